package ports

import (
	"context"

	"warehouse/internal/core/domain/model/unit"
)

// UnitRepository stores Unit aggregates. Every call commits on its own unless
// the repository was obtained from a UnitOfWork with an open transaction.
type UnitRepository interface {
	// Add inserts a new unit and records the assigned id on it.
	Add(ctx context.Context, u *unit.Unit) error

	// Update writes the unit state and increases its version.
	Update(ctx context.Context, u *unit.Unit) error

	// Get returns errs.ErrObjectNotFound when no unit has the id.
	Get(ctx context.Context, id int64) (*unit.Unit, error)

	// Delete removes the unit if its stored version still equals u.Version().
	// A mismatch yields errs.ErrConcurrencyConflict.
	Delete(ctx context.Context, u *unit.Unit) error
}
