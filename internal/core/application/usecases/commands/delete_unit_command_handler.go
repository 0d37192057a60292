package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// DeleteUnitCommandHandler removes a unit together with its audit log and
// comments.
//
// History is removed in its own transaction before the unit delete is tried.
// When the unit delete then fails, for example because the unit was changed
// since it was loaded, the history stays removed. When the history removal
// itself fails, nothing is deleted: the unit, its audit entries and comments
// all stay and the result reports MsgDeleteFailed.
type DeleteUnitCommandHandler struct {
	uowFactory UoWFactory
	refs       ports.ReferenceRepository
	logger     *slog.Logger
}

func NewDeleteUnitCommandHandler(
	uowFactory UoWFactory,
	refs ports.ReferenceRepository,
	logger *slog.Logger,
) DeleteUnitCommandHandler {
	return DeleteUnitCommandHandler{
		uowFactory: uowFactory,
		refs:       refs,
		logger:     logger.With("component", "delete_unit"),
	}
}

func (h *DeleteUnitCommandHandler) Handle(ctx context.Context, cmd DeleteUnitCommand) (Result, error) {
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
			result.Fail(MsgDeleteFailed)
		}
		return result, nil
	}

	// captured before anything is removed
	unitID := u.ID()
	var modelName string
	if info, err := h.refs.Model(ctx, u.ModelID()); err != nil {
		log.WarnContext(ctx, "model lookup failed", "model_id", u.ModelID(), "error", err)
	} else {
		modelName = info.Name
	}

	if err = h.purgeHistory(ctx, uow, unitID); err != nil {
		log.ErrorContext(ctx, "failed to remove unit history", "error", err)
		result.Fail(MsgDeleteFailed)
		return result, nil
	}

	if err = units.Delete(ctx, u); err != nil {
		log.ErrorContext(ctx, "failed to remove unit, history already removed", "error", err)
		result.Fail(MsgDeleteFailed)
		return result, nil
	}

	log.InfoContext(ctx, "unit removed from warehouse", "model", modelName)
	return result, nil
}

func (h *DeleteUnitCommandHandler) purgeHistory(ctx context.Context, uow UoW, unitID int64) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entries, err := uow.AuditRepository().DeleteByUnit(ctx, unitID)
	if err != nil {
		return fmt.Errorf("delete audit entries: %w", err)
	}
	comments, err := uow.CommentRepository().DeleteByUnit(ctx, unitID)
	if err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}
	h.logger.DebugContext(ctx, "unit history removed", "unit_id", unitID, "audit_entries", entries, "comments", comments)
	return nil
}
