// Package postgres provides the GORM-based Unit of Work over the warehouse
// repositories.
//
// Repositories handed out by a unit of work run inside its transaction while
// one is open and on the plain connection otherwise, so a command can mix
// independently committed steps with a transactional block:
//
//	uow := factory.Create()
//	u, err := uow.UnitRepository().Get(ctx, id) // own statement
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if _, err := uow.AuditRepository().DeleteByUnit(ctx, id); err != nil {
//	    return err
//	}
//	if _, err := uow.CommentRepository().DeleteByUnit(ctx, id); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// A UnitOfWork is not safe for concurrent use; every request creates its own.
package postgres

import (
	"context"

	"warehouse/internal/adapters/out/postgres/auditrepo"
	"warehouse/internal/adapters/out/postgres/commentrepo"
	"warehouse/internal/adapters/out/postgres/orderlinkrepo"
	"warehouse/internal/adapters/out/postgres/unitrepo"
	"warehouse/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a unit of work with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open,
// which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) UnitRepository() ports.UnitRepository {
	return unitrepo.NewGormUnitRepository(uow.conn())
}

func (uow *GormUnitOfWork) AuditRepository() ports.AuditRepository {
	return auditrepo.NewGormAuditRepository(uow.conn())
}

func (uow *GormUnitOfWork) CommentRepository() ports.CommentRepository {
	return commentrepo.NewGormCommentRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderLinkRepository() ports.OrderLinkRepository {
	return orderlinkrepo.NewGormOrderLinkRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
