package commands

import (
	"context"
	"errors"
	"log/slog"

	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

type AssignUnitToOrderCommandHandler struct {
	uowFactory UoWFactory
	links      OrderLinkRegistry
	logger     *slog.Logger
}

func NewAssignUnitToOrderCommandHandler(
	uowFactory UoWFactory,
	refs ports.ReferenceRepository,
	logger *slog.Logger,
) AssignUnitToOrderCommandHandler {
	return AssignUnitToOrderCommandHandler{
		uowFactory: uowFactory,
		links:      NewOrderLinkRegistry(refs, logger),
		logger:     logger.With("component", "assign_unit_to_order"),
	}
}

func (h *AssignUnitToOrderCommandHandler) Handle(ctx context.Context, cmd AssignUnitToOrderCommand) (Result, error) {
	if err := cmd.Validate(); err != nil {
		return Result{}, err
	}

	result := NewResult()
	uow := h.uowFactory.Create()

	u, err := uow.UnitRepository().Get(ctx, cmd.UnitID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			result.Fail(MsgUnitNotFound)
		} else {
			h.logger.ErrorContext(ctx, "failed to load unit", "unit_id", cmd.UnitID(), "error", err)
			result.Fail(MsgOrderLinkFailed)
		}
		return result, nil
	}

	err = h.links.Replace(ctx, uow, u, cmd.OrderID(), cmd.Comment(), cmd.ActorID())
	if err == nil {
		return result, nil
	}
	if verr, ok := errs.AsValidationError(err); ok {
		result.Fail(verr.Messages()...)
		return result, nil
	}
	h.logger.ErrorContext(ctx, "failed to link unit to order",
		"unit_id", cmd.UnitID(), "order_id", cmd.OrderID(), "error", err)
	result.Fail(MsgOrderLinkFailed)
	return result, nil
}
