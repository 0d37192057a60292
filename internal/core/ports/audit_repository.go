package ports

import (
	"context"

	"warehouse/internal/core/domain/model/audit"
)

type AuditRepository interface {
	Add(ctx context.Context, entry *audit.Entry) error

	// ListByUnit returns entries newest first.
	ListByUnit(ctx context.Context, unitID int64) ([]*audit.Entry, error)

	// DeleteByUnit removes every entry of the unit and reports how many were removed.
	DeleteByUnit(ctx context.Context, unitID int64) (int64, error)
}
