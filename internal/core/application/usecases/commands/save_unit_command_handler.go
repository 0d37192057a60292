package commands

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/core/ports"
)

// SaveUnitCommandHandler creates or updates a unit and records the change.
//
// The steps commit independently:
//  1. the unit write
//  2. on create, the "unit added" audit entry
//  3. the order link replacement (and its status transition); on create
//     only when the payload carries a positive order id
//  4. the audit entry with the fields changed by the unit write
//
// A rejected order link in step 3 is returned at once and step 4 is skipped.
type SaveUnitCommandHandler struct {
	uowFactory UoWFactory
	refs       ports.ReferenceRepository
	links      OrderLinkRegistry
	logger     *slog.Logger
	clock      func() time.Time
}

func NewSaveUnitCommandHandler(
	uowFactory UoWFactory,
	refs ports.ReferenceRepository,
	logger *slog.Logger,
) SaveUnitCommandHandler {
	return SaveUnitCommandHandler{
		uowFactory: uowFactory,
		refs:       refs,
		links:      NewOrderLinkRegistry(refs, logger),
		logger:     logger.With("component", "save_unit"),
		clock:      time.Now,
	}
}

// Handle returns the stored unit, an *errs.ValidationError listing every
// violated field, or the store error.
func (h *SaveUnitCommandHandler) Handle(ctx context.Context, cmd SaveUnitCommand) (*unit.Unit, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	req := cmd.Request()
	actorID := cmd.ActorID()
	uow := h.uowFactory.Create()
	units := uow.UnitRepository()

	var (
		u      *unit.Unit
		before unit.Snapshot
		err    error
	)
	if id := req.UnitID(); id > 0 {
		if u, err = units.Get(ctx, id); err != nil {
			return nil, err
		}
		before = u.Snapshot()
	} else {
		u = unit.NewUnit()
	}

	now := h.clock()
	u.Apply(req)
	u.Stamp(actorID, now)

	if err = validateUnit(ctx, h.refs, u); err != nil {
		return nil, err
	}

	created := u.IsNew()
	if created {
		err = units.Add(ctx, u)
	} else {
		err = units.Update(ctx, u)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to store unit", "unit_id", u.ID(), "error", err)
		return nil, err
	}
	h.logger.InfoContext(ctx, "unit stored", "unit_id", u.ID(), "created", created, "actor_id", actorID)

	after := u.Snapshot()

	if created {
		appendAudit(ctx, h.logger, uow, u.ID(), actorID, h.describeAdded(ctx, u), now)
	}

	var orderID int64
	if req.OrderID != nil {
		orderID = *req.OrderID
	}
	if !created || orderID > 0 {
		var orderComment string
		if req.OrderComment != nil {
			orderComment = *req.OrderComment
		}
		if err = h.links.Replace(ctx, uow, u, orderID, orderComment, actorID); err != nil {
			return nil, err
		}
	}

	appendAudit(ctx, h.logger, uow, u.ID(), actorID, audit.FieldsChanged(unit.Diff(before, after)), now)
	return u, nil
}

func (h *SaveUnitCommandHandler) describeAdded(ctx context.Context, u *unit.Unit) string {
	info, err := h.refs.Model(ctx, u.ModelID())
	if err != nil {
		h.logger.WarnContext(ctx, "model lookup failed", "model_id", u.ModelID(), "error", err)
	}
	return audit.UnitAdded(u.ID(), info.Name, info.VendorName, u.Serial(), u.Amount())
}
