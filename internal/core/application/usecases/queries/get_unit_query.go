package queries

import (
	"errors"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrGetUnitQueryIsNotConstructed = errors.New(
	"GetUnitQuery must be created via NewGetUnitQuery constructor",
)

// GetUnitQuery loads one unit with everything a unit card shows: model and
// vendor, status label and colour, owner, shipper, stock, responsible user and
// the order the unit is linked to.
type GetUnitQuery struct {
	unitID int64
	guard  guard.ConstructorGuard
}

func NewGetUnitQuery(unitID int64) (GetUnitQuery, error) {
	if unitID <= 0 {
		return GetUnitQuery{}, errs.NewValueIsRequiredError("unit id")
	}
	return GetUnitQuery{unitID: unitID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUnitQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitQueryIsNotConstructed)
}

func (q GetUnitQuery) UnitID() int64 { return q.unitID }

// UnitView is the enriched unit card.
type UnitView struct {
	UnitListItem
	ShipperCompanyID *int64
	ShipperName      string
	PinCode          string
	CreatedBy        int64
	Version          int
	OrderID          *int64
	OrderComment     string
}
