package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

type unitSaver interface {
	Handle(ctx context.Context, cmd SaveUnitCommand) (*unit.Unit, error)
}

// MoveUnitCommandHandler carries out a move planned by services.TransferPlanner.
//
// A simple move is handed to the save handler. A split stores the reduced
// source unit first and then creates the child unit. If the child cannot be
// stored, the source keeps its reduced amount.
type MoveUnitCommandHandler struct {
	uowFactory UoWFactory
	refs       ports.ReferenceRepository
	saver      unitSaver
	planner    services.TransferPlanner
	logger     *slog.Logger
	clock      func() time.Time
}

func NewMoveUnitCommandHandler(
	uowFactory UoWFactory,
	refs ports.ReferenceRepository,
	saver unitSaver,
	logger *slog.Logger,
) MoveUnitCommandHandler {
	return MoveUnitCommandHandler{
		uowFactory: uowFactory,
		refs:       refs,
		saver:      saver,
		planner:    services.NewTransferPlanner(),
		logger:     logger.With("component", "move_unit"),
		clock:      time.Now,
	}
}

// Handle reports every outcome in the Result. The error is non-nil only for a
// command that was not built by NewMoveUnitCommand.
func (h *MoveUnitCommandHandler) Handle(ctx context.Context, cmd MoveUnitCommand) (Result, error) {
	if err := cmd.Validate(); err != nil {
		return Result{}, err
	}

	result := NewResult()
	req := cmd.Request()
	log := h.logger.With("unit_id", cmd.UnitID(), "actor_id", cmd.ActorID())

	uow := h.uowFactory.Create()
	units := uow.UnitRepository()

	source, err := units.Get(ctx, cmd.UnitID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			result.Fail(MsgUnitNotFound)
		} else {
			log.ErrorContext(ctx, "failed to load unit", "error", err)
			result.Fail(MsgSaveFailed)
		}
		return result, nil
	}

	plan, err := h.planner.Plan(source, req)
	if err != nil {
		log.ErrorContext(ctx, "failed to plan move", "error", err)
		result.Fail(MsgSaveFailed)
		return result, nil
	}
	log.InfoContext(ctx, "moving unit", "kind", plan.Kind.String(), "amount", plan.Amount)

	if plan.Kind == services.SimpleTransfer {
		return h.moveWhole(ctx, log, req, cmd.ActorID()), nil
	}

	if plan.Rejected() {
		log.WarnContext(ctx, "split rejected", "violations", plan.Violations, "available", source.Amount())
		result.Fail(plan.Violations...)
		return result, nil
	}

	now := h.clock()
	if err = source.Withdraw(plan.Amount); err != nil {
		log.ErrorContext(ctx, "failed to withdraw amount", "error", err)
		result.Fail(MsgSaveFailed)
		return result, nil
	}
	if err = units.Update(ctx, source); err != nil {
		log.ErrorContext(ctx, "failed to store reduced source unit", "error", err)
		result.Fail(MsgSaveFailed)
		return result, nil
	}

	child, err := h.buildChild(ctx, source, plan, req, cmd.ActorID(), now)
	if err == nil {
		err = units.Add(ctx, child)
	}
	if err != nil {
		log.ErrorContext(ctx, "failed to store split unit, source keeps reduced amount",
			"amount", plan.Amount, "error", err)
		result.Fail(MsgSaveFailed)
		return result, nil
	}

	appendAudit(ctx, log, uow, source.ID(), cmd.ActorID(), audit.MovedOut(plan.Amount, child.ID()), now)
	appendAudit(ctx, log, uow, child.ID(), cmd.ActorID(), audit.SplitFrom(source.ID(), plan.Amount), now)
	log.InfoContext(ctx, "unit split", "child_id", child.ID(), "amount", plan.Amount, "remaining", source.Amount())
	return result, nil
}

func (h *MoveUnitCommandHandler) moveWhole(
	ctx context.Context,
	log *slog.Logger,
	req unit.UpdateRequest,
	actorID int64,
) Result {
	result := NewResult()

	saveCmd, err := NewSaveUnitCommand(req, actorID)
	if err == nil {
		_, err = h.saver.Handle(ctx, saveCmd)
	}
	if err == nil {
		return result
	}

	if verr, ok := errs.AsValidationError(err); ok {
		result.Fail(verr.Messages()...)
		return result
	}
	log.ErrorContext(ctx, "failed to move whole unit", "error", err)
	result.Fail(MsgSaveFailed)
	return result
}

func (h *MoveUnitCommandHandler) buildChild(
	ctx context.Context,
	source *unit.Unit,
	plan services.TransferPlan,
	req unit.UpdateRequest,
	actorID int64,
	now time.Time,
) (*unit.Unit, error) {
	portion, err := h.planner.Portion(plan, req, actorID, now)
	if err != nil {
		return nil, err
	}
	child, err := source.Split(portion)
	if err != nil {
		return nil, err
	}
	if err = validateUnit(ctx, h.refs, child); err != nil {
		if verr, ok := errs.AsValidationError(err); ok {
			h.logger.WarnContext(ctx, "split unit is invalid", "fields", verr.Messages())
		}
		return nil, err
	}
	return child, nil
}
