// Package commands contains the operations that change warehouse state:
// saving, moving, deleting and commenting units and linking them to orders.
//
// Handlers obtain repositories from a unit of work. Most operations are a
// sequence of independent writes and never call Begin, so every repository
// call commits on its own. Only the removal of a unit's history opens a
// transaction.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UnitRepoFactory interface {
		UnitRepository() ports.UnitRepository
	}

	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	CommentRepoFactory interface {
		CommentRepository() ports.CommentRepository
	}

	OrderLinkRepoFactory interface {
		OrderLinkRepository() ports.OrderLinkRepository
	}

	// UoW gives access to every warehouse repository.
	//
	// Example:
	//   uow := factory.Create()
	//   units := uow.UnitRepository()      // no Begin: commits per call
	//
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//   _, err = uow.AuditRepository().DeleteByUnit(ctx, id)
	//   _, err = uow.CommentRepository().DeleteByUnit(ctx, id)
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UnitRepoFactory
		AuditRepoFactory
		CommentRepoFactory
		OrderLinkRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
