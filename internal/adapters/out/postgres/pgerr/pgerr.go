// Package pgerr turns PostgreSQL driver errors into the errs vocabulary used by
// the core.
package pgerr

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// ForeignKeyViolation reports the violated constraint when err is a foreign key
// violation.
func ForeignKeyViolation(err error) (string, bool) {
	return violation(err, codeForeignKeyViolation)
}

// UniqueViolation reports the violated constraint when err is a unique
// violation.
func UniqueViolation(err error) (string, bool) {
	return violation(err, codeUniqueViolation)
}

// Map converts a driver error for the named entity:
//   - gorm.ErrRecordNotFound becomes errs.ObjectNotFoundError
//   - foreign key and check violations become errs.ValueIsInvalidError
//   - unique violations wrap errs.ErrConcurrencyConflict
//
// Other errors are wrapped with the entity name.
func Map(err error, entity string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(entity, id, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", entity, err)
	}
	switch pgErr.Code {
	case codeForeignKeyViolation, codeCheckViolation:
		return errs.NewValueIsInvalidErrorWithCause(pgErr.ConstraintName, err)
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w: %s", entity, errs.ErrConcurrencyConflict, pgErr.ConstraintName)
	default:
		return fmt.Errorf("%s: %w", entity, err)
	}
}

func violation(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}
