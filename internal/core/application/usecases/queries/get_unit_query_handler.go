package queries

import (
	"context"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUnitQueryHandler struct {
	db *gorm.DB
}

func NewGetUnitQueryHandler(db *gorm.DB) GetUnitQueryHandler {
	return GetUnitQueryHandler{db: db}
}

type unitCardRow struct {
	Base             unitRow `gorm:"embedded"`
	ShipperCompanyID *int64
	ShipperName      *string
	PinCode          string
	CreatedBy        int64
	Version          int
	OrderID          *int64
	OrderComment     *string
}

// Handle returns errs.ErrObjectNotFound for an unknown unit.
func (h GetUnitQueryHandler) Handle(ctx context.Context, query GetUnitQuery) (UnitView, error) {
	if err := query.Validate(); err != nil {
		return UnitView{}, err
	}

	sql, args, err := unitSelect().
		Columns(
			"u.shipper_company_id", "sc.name AS shipper_name",
			"u.pin_code", "u.created_by", "u.version",
			"ol.order_id", "ol.comment AS order_comment",
		).
		LeftJoin("companies sc ON sc.id = u.shipper_company_id").
		LeftJoin(`LATERAL (
			SELECT order_id, comment FROM order_units
			WHERE unit_id = u.id ORDER BY id DESC LIMIT 1
		) ol ON TRUE`).
		Where("u.id = ?", query.UnitID()).
		ToSql()
	if err != nil {
		return UnitView{}, err
	}

	var row unitCardRow
	result := h.db.WithContext(ctx).Raw(sql, args...).Scan(&row)
	if result.Error != nil {
		return UnitView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return UnitView{}, errs.NewObjectNotFoundErrorWithCause("unit", query.UnitID(), gorm.ErrRecordNotFound)
	}

	view := UnitView{
		UnitListItem:     row.Base.item(),
		ShipperCompanyID: row.ShipperCompanyID,
		ShipperName:      deref(row.ShipperName),
		PinCode:          row.PinCode,
		CreatedBy:        row.CreatedBy,
		Version:          row.Version,
		OrderID:          row.OrderID,
		OrderComment:     deref(row.OrderComment),
	}
	return view, nil
}
