package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListUnitsQueryHandler struct {
	db      *gorm.DB
	perPage int
}

// NewListUnitsQueryHandler uses DefaultPerPage when perPage is not positive.
func NewListUnitsQueryHandler(db *gorm.DB, perPage int) ListUnitsQueryHandler {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return ListUnitsQueryHandler{db: db, perPage: perPage}
}

func (h ListUnitsQueryHandler) Handle(ctx context.Context, query ListUnitsQuery) (ListUnitsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUnitsResponse{}, err
	}

	where, numericSerial := query.conditions()

	countSQL, countArgs, err := unitSelect().
		RemoveColumns().
		Column("count(*)").
		Where(where).
		ToSql()
	if err != nil {
		return ListUnitsResponse{}, err
	}

	var total int64
	if err = h.db.WithContext(ctx).Raw(countSQL, countArgs...).Scan(&total).Error; err != nil {
		return ListUnitsResponse{}, err
	}

	response := ListUnitsResponse{
		Items:   []UnitListItem{},
		Total:   total,
		Page:    query.Page(),
		PerPage: h.perPage,
		Pages:   int((total + int64(h.perPage) - 1) / int64(h.perPage)),
	}
	if total == 0 {
		return response, nil
	}

	listSQL, listArgs, err := unitSelect().
		Where(where).
		OrderBy(query.orderBy(numericSerial)...).
		Limit(uint64(h.perPage)).
		Offset(uint64((query.Page() - 1) * h.perPage)).
		ToSql()
	if err != nil {
		return ListUnitsResponse{}, err
	}

	var rows []unitRow
	if err = h.db.WithContext(ctx).Raw(listSQL, listArgs...).Scan(&rows).Error; err != nil {
		return ListUnitsResponse{}, err
	}
	response.Items = items(rows)
	return response, nil
}

// All returns every unit the query selects, ignoring its page, up to
// MaxExportRows rows.
func (h ListUnitsQueryHandler) All(ctx context.Context, query ListUnitsQuery) ([]UnitListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, numericSerial := query.conditions()
	stmt := unitSelect().
		Where(where).
		OrderBy(query.orderBy(numericSerial)...).
		Limit(MaxExportRows)
	return scanUnits(ctx, h.db, stmt)
}
