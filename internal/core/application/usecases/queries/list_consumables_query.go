package queries

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var (
	ErrListConsumablesQueryIsNotConstructed = errors.New(
		"ListConsumablesQuery must be created via NewListConsumablesQuery constructor",
	)
	ErrListOrderConsumablesQueryIsNotConstructed = errors.New(
		"ListOrderConsumablesQuery must be created via NewListOrderConsumablesQuery constructor",
	)
)

// ListConsumablesQuery lists un-serialized units an installer holds.
type ListConsumablesQuery struct {
	responsibleID int64
	guard         guard.ConstructorGuard
}

func NewListConsumablesQuery(responsibleID int64) (ListConsumablesQuery, error) {
	if responsibleID <= 0 {
		return ListConsumablesQuery{}, errs.NewValueIsRequiredError("responsible id")
	}
	return ListConsumablesQuery{responsibleID: responsibleID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListConsumablesQuery) Validate() error {
	return q.guard.Validate(ErrListConsumablesQueryIsNotConstructed)
}

// ListOrderConsumablesQuery lists un-serialized installed units linked to an
// order.
type ListOrderConsumablesQuery struct {
	orderID int64
	guard   guard.ConstructorGuard
}

func NewListOrderConsumablesQuery(orderID int64) (ListOrderConsumablesQuery, error) {
	if orderID <= 0 {
		return ListOrderConsumablesQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return ListOrderConsumablesQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderConsumablesQuery) Validate() error {
	return q.guard.Validate(ErrListOrderConsumablesQueryIsNotConstructed)
}

// ConsumablesQueryHandler serves both consumable listings.
type ConsumablesQueryHandler struct {
	db *gorm.DB
}

func NewConsumablesQueryHandler(db *gorm.DB) ConsumablesQueryHandler {
	return ConsumablesQueryHandler{db: db}
}

func (h ConsumablesQueryHandler) Held(ctx context.Context, query ListConsumablesQuery) ([]UnitListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := unitSelect().
		Where(sq.Eq{
			"u.responsible_user_id": query.responsibleID,
			"u.status_id":           int(unit.WithInstaller),
			"u.serial":              "",
		}).
		OrderBy("m.name", "u.id")
	return scanUnits(ctx, h.db, stmt)
}

func (h ConsumablesQueryHandler) ForOrder(ctx context.Context, query ListOrderConsumablesQuery) ([]UnitListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := unitSelect().
		Join("order_units ou ON ou.unit_id = u.id").
		Where(sq.Eq{
			"ou.order_id": query.orderID,
			"u.status_id": int(unit.AtWork),
			"u.serial":    "",
		}).
		OrderBy("m.name", "u.id")
	return scanUnits(ctx, h.db, stmt)
}
