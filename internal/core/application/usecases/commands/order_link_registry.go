package commands

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/orderlink"
	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// OrderLinkRegistry keeps at most one order link per unit. Replace always
// deletes the unit's links first and then inserts the new one, so the old
// link is gone even when the new one is rejected.
type OrderLinkRegistry struct {
	refs   ports.ReferenceRepository
	logger *slog.Logger
	clock  func() time.Time
}

func NewOrderLinkRegistry(refs ports.ReferenceRepository, logger *slog.Logger) OrderLinkRegistry {
	return OrderLinkRegistry{
		refs:   refs,
		logger: logger.With("component", "order_link_registry"),
		clock:  time.Now,
	}
}

// Replace links u to orderID. With orderID <= 0 it only removes the existing
// links. A successful link forces u into unit.AtWork, stores u and appends the
// status transition to the audit log.
//
// A rejected link is returned as *errs.ValidationError.
func (r OrderLinkRegistry) Replace(
	ctx context.Context,
	uow UoW,
	u *unit.Unit,
	orderID int64,
	comment string,
	actorID int64,
) error {
	links := uow.OrderLinkRepository()
	if _, err := links.DeleteByUnit(ctx, u.ID()); err != nil {
		r.logger.ErrorContext(ctx, "failed to remove order links", "unit_id", u.ID(), "error", err)
	}

	if orderID <= 0 {
		return nil
	}

	exists, err := r.refs.Exists(ctx, ports.OrderRef, orderID)
	if err != nil {
		return err
	}
	if !exists {
		verr := errs.NewValidationError()
		verr.Add("order_id", msgUnknownReference)
		return verr
	}

	now := r.clock()
	link, err := orderlink.NewLink(u.ID(), orderID, comment, actorID, now)
	if err != nil {
		return err
	}
	if err = links.Add(ctx, link); err != nil {
		r.logger.ErrorContext(ctx, "failed to link unit to order",
			"unit_id", u.ID(), "order_id", orderID, "error", err)
		return err
	}
	r.logger.InfoContext(ctx, "unit linked to order", "unit_id", u.ID(), "order_id", orderID, "actor_id", actorID)

	previous := u.Status()
	if err = u.ChangeStatus(unit.AtWork); err != nil {
		return err
	}
	if err = uow.UnitRepository().Update(ctx, u); err != nil {
		return err
	}

	appendAudit(ctx, r.logger, uow, u.ID(), actorID, audit.StatusTransition(previous, unit.AtWork), now)
	return nil
}

// appendAudit writes an audit entry. Failures are logged and swallowed: the
// mutation the entry describes has already been stored.
func appendAudit(
	ctx context.Context,
	logger *slog.Logger,
	uow AuditRepoFactory,
	unitID, actorID int64,
	action string,
	at time.Time,
) {
	entry, err := audit.NewEntry(unitID, actorID, action, at)
	if err == nil {
		err = uow.AuditRepository().Add(ctx, entry)
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to append audit entry", "unit_id", unitID, "action", action, "error", err)
	}
}
