package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork hands out repositories that share one transaction once Begin
// was called. Without Begin every repository call commits on its own.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	UnitRepository() UnitRepository

	AuditRepository() AuditRepository

	CommentRepository() CommentRepository

	OrderLinkRepository() OrderLinkRepository
}
