package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

type statusCommenter interface {
	Handle(ctx context.Context, cmd RecordStatusChangeCommand) (Result, error)
}

// ChangeUnitStatusCommandHandler stores the new status, appends the status
// transition to the audit log and writes the status change comment.
type ChangeUnitStatusCommandHandler struct {
	uowFactory UoWFactory
	refs       ports.ReferenceRepository
	commenter  statusCommenter
	logger     *slog.Logger
	clock      func() time.Time
}

func NewChangeUnitStatusCommandHandler(
	uowFactory UoWFactory,
	refs ports.ReferenceRepository,
	commenter statusCommenter,
	logger *slog.Logger,
) ChangeUnitStatusCommandHandler {
	return ChangeUnitStatusCommandHandler{
		uowFactory: uowFactory,
		refs:       refs,
		commenter:  commenter,
		logger:     logger.With("component", "change_unit_status"),
		clock:      time.Now,
	}
}

func (h *ChangeUnitStatusCommandHandler) Handle(ctx context.Context, cmd ChangeUnitStatusCommand) (Result, error) {
	if err := cmd.Validate(); err != nil {
		return Result{}, err
	}

	result := NewResult()
	log := h.logger.With("unit_id", cmd.UnitID(), "actor_id", cmd.ActorID())

	uow := h.uowFactory.Create()
	units := uow.UnitRepository()

	u, err := units.Get(ctx, cmd.UnitID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			result.Fail(MsgUnitNotFound)
		} else {
			log.ErrorContext(ctx, "failed to load unit", "error", err)
			result.Fail(MsgStatusNotChanged)
		}
		return result, nil
	}

	previous := u.Status()
	if err = u.ChangeStatus(cmd.Status()); err != nil {
		result.Fail(MsgStatusNotChanged)
		return result, nil
	}
	if responsible := cmd.ResponsibleID(); responsible != nil {
		u.AssignResponsible(responsible)
	}

	verr := errs.NewValidationError()
	if err = checkUnitReferences(ctx, h.refs, u, verr); err != nil {
		log.ErrorContext(ctx, "reference check failed", "error", err)
		result.Fail(MsgStatusNotChanged)
		return result, nil
	}
	if verr.HasErrors() {
		result.Fail(verr.Messages()...)
		return result, nil
	}

	if err = units.Update(ctx, u); err != nil {
		log.ErrorContext(ctx, "failed to store status", "error", err)
		result.Fail(MsgStatusNotChanged)
		return result, nil
	}

	now := h.clock()
	appendAudit(ctx, log, uow, u.ID(), cmd.ActorID(), audit.StatusTransition(previous, u.Status()), now)

	var responsibleID int64
	if id := u.ResponsibleUserID(); id != nil {
		responsibleID = *id
	}
	commentCmd, err := NewRecordStatusChangeCommand(u.ID(), previous, u.Status(), responsibleID, cmd.ActorID())
	if err != nil {
		log.ErrorContext(ctx, "failed to build status comment", "error", err)
		result.Fail(MsgCommentFailed)
		return result, nil
	}
	commentResult, err := h.commenter.Handle(ctx, commentCmd)
	if err != nil {
		result.Fail(MsgCommentFailed)
		return result, nil
	}
	result.Merge(commentResult)
	return result, nil
}
