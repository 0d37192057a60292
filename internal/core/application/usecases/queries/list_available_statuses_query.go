package queries

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListAvailableStatusesQueryIsNotConstructed = errors.New(
	"ListAvailableStatusesQuery must be created via NewListAvailableStatusesQuery constructor",
)

// ListAvailableStatusesQuery lists the statuses a unit can be moved to. With
// unit id 0 the whole catalog is returned.
type ListAvailableStatusesQuery struct {
	unitID int64
	guard  guard.ConstructorGuard
}

func NewListAvailableStatusesQuery(unitID int64) (ListAvailableStatusesQuery, error) {
	if unitID < 0 {
		return ListAvailableStatusesQuery{}, errs.NewValueIsOutOfRangeError("unit id", unitID, 0, nil)
	}
	return ListAvailableStatusesQuery{unitID: unitID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableStatusesQueryIsNotConstructed)
}

type StatusView struct {
	ID    int
	Label string
	Color string
}

type ListAvailableStatusesQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableStatusesQueryHandler(db *gorm.DB) ListAvailableStatusesQueryHandler {
	return ListAvailableStatusesQueryHandler{db: db}
}

func (h ListAvailableStatusesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableStatusesQuery,
) ([]StatusView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	current := unit.Unknown
	if query.unitID > 0 {
		var statusID int
		result := h.db.WithContext(ctx).
			Raw("SELECT status_id FROM units WHERE id = ?", query.unitID).
			Scan(&statusID)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, errs.NewObjectNotFoundError("unit", query.unitID)
		}
		current = unit.Status(statusID)
	}

	views := make([]StatusView, 0, len(unit.ListActive()))
	for _, s := range current.Available() {
		views = append(views, StatusView{ID: int(s), Label: s.Label(), Color: s.Color()})
	}
	return views, nil
}
