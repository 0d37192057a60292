package queries

import (
	"context"
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrSearchBySerialQueryIsNotConstructed = errors.New(
	"SearchBySerialQuery must be created via NewSearchBySerialQuery constructor",
)

const searchLimit = 100

// SearchBySerialQuery finds units whose serial contains a fragment, in one
// status, optionally held by one responsible user.
type SearchBySerialQuery struct {
	serial        string
	status        unit.Status
	responsibleID int64
	guard         guard.ConstructorGuard
}

// NewSearchBySerialQuery searches units in status New when status is
// unit.Unknown. responsibleID 0 searches all users.
func NewSearchBySerialQuery(serial string, status unit.Status, responsibleID int64) (SearchBySerialQuery, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return SearchBySerialQuery{}, errs.NewValueIsRequiredError("serial")
	}
	if status == unit.Unknown {
		status = unit.New
	}
	if err := status.Validate(); err != nil {
		return SearchBySerialQuery{}, err
	}
	return SearchBySerialQuery{
		serial:        serial,
		status:        status,
		responsibleID: responsibleID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q SearchBySerialQuery) Validate() error {
	return q.guard.Validate(ErrSearchBySerialQueryIsNotConstructed)
}

type SearchBySerialQueryHandler struct {
	db *gorm.DB
}

func NewSearchBySerialQueryHandler(db *gorm.DB) SearchBySerialQueryHandler {
	return SearchBySerialQueryHandler{db: db}
}

// Handle returns at most 100 matches ordered by serial.
func (h SearchBySerialQueryHandler) Handle(ctx context.Context, query SearchBySerialQuery) ([]UnitListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := sq.And{
		sq.ILike{"u.serial": "%" + escapeLike(query.serial) + "%"},
		sq.Eq{"u.status_id": int(query.status)},
	}
	if query.responsibleID > 0 {
		where = append(where, sq.Eq{"u.responsible_user_id": query.responsibleID})
	}
	return scanUnits(ctx, h.db, unitSelect().Where(where).OrderBy("u.serial", "u.id").Limit(searchLimit))
}

func scanUnits(ctx context.Context, db *gorm.DB, stmt sq.SelectBuilder) ([]UnitListItem, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []unitRow
	if err = db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return items(rows), nil
}
