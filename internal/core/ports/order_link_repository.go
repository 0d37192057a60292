package ports

import (
	"context"

	"warehouse/internal/core/domain/model/orderlink"
)

// OrderLinkRepository keeps unit to order links. It does not enforce a single
// link per unit; callers delete the existing links before adding a new one.
type OrderLinkRepository interface {
	// Add returns an *errs.ValidationError when the order or unit is unknown
	// or the same link already exists.
	Add(ctx context.Context, link *orderlink.Link) error

	// GetByUnit returns errs.ErrObjectNotFound when the unit is not linked.
	GetByUnit(ctx context.Context, unitID int64) (*orderlink.Link, error)

	DeleteByUnit(ctx context.Context, unitID int64) (int64, error)
}
