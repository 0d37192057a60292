package queries

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrGetStockSummaryQueryIsNotConstructed = errors.New(
	"GetStockSummaryQuery must be created via NewGetStockSummaryQuery constructor",
)

// GetStockSummaryQuery totals units per status, optionally for one stock.
type GetStockSummaryQuery struct {
	stockID int64
	guard   guard.ConstructorGuard
}

// NewGetStockSummaryQuery summarizes all stocks when stockID is 0.
func NewGetStockSummaryQuery(stockID int64) GetStockSummaryQuery {
	if stockID < 0 {
		stockID = 0
	}
	return GetStockSummaryQuery{stockID: stockID, guard: guard.NewConstructorGuard()}
}

func (q GetStockSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStockSummaryQueryIsNotConstructed)
}

// StatusTotal is the number of unit rows and the summed amount in one status.
type StatusTotal struct {
	StatusID    int
	StatusLabel string
	Units       int64
	Amount      int64
}

type GetStockSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetStockSummaryQueryHandler(db *gorm.DB) GetStockSummaryQueryHandler {
	return GetStockSummaryQueryHandler{db: db}
}

// Handle returns one total per catalog status, zero totals included, ordered
// by status id.
func (h GetStockSummaryQueryHandler) Handle(ctx context.Context, query GetStockSummaryQuery) ([]StatusTotal, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := sq.Select("status_id", "count(*) AS units", "COALESCE(sum(amount), 0) AS amount").
		From("units").
		GroupBy("status_id")
	if query.stockID > 0 {
		stmt = stmt.Where(sq.Eq{"stock_id": query.stockID})
	}
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []StatusTotal
	if err = h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	byStatus := make(map[int]StatusTotal, len(rows))
	for _, row := range rows {
		byStatus[row.StatusID] = row
	}

	totals := make([]StatusTotal, 0, len(unit.ListActive()))
	for _, s := range unit.ListActive() {
		total := byStatus[int(s)]
		total.StatusID = int(s)
		total.StatusLabel = s.Label()
		totals = append(totals, total)
	}
	return totals, nil
}
