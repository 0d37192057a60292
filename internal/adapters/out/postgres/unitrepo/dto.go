// Package unitrepo persists Unit aggregates in the units table.
package unitrepo

import (
	"time"

	"warehouse/internal/core/domain/model/unit"
)

// UnitDTO is a row of the units table.
type UnitDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	OwnerCompanyID    int64
	ShipperCompanyID  *int64
	ModelID           int64
	StockID           int64
	Serial            string
	Amount            int
	StatusID          int
	ResponsibleUserID *int64
	PinCode           string
	Comment           string
	CreatedBy         int64
	CreatedAt         time.Time `gorm:"autoCreateTime:false"`
	ParentID          *int64
	Version           int
}

func (UnitDTO) TableName() string {
	return "units"
}

func fromDomain(u *unit.Unit) UnitDTO {
	a := u.Attributes()
	return UnitDTO{
		ID:                u.ID(),
		OwnerCompanyID:    a.OwnerCompanyID,
		ShipperCompanyID:  a.ShipperCompanyID,
		ModelID:           a.ModelID,
		StockID:           a.StockID,
		Serial:            a.Serial,
		Amount:            a.Amount,
		StatusID:          int(a.Status),
		ResponsibleUserID: a.ResponsibleUserID,
		PinCode:           a.PinCode,
		Comment:           a.Comment,
		CreatedBy:         a.CreatedBy,
		CreatedAt:         a.CreatedAt,
		ParentID:          a.ParentID,
		Version:           u.Version(),
	}
}

// columns lists everything an update writes. Saving a unit restamps
// created_by and created_at, so both are included.
func (dto UnitDTO) columns() map[string]any {
	return map[string]any{
		"owner_company_id":    dto.OwnerCompanyID,
		"shipper_company_id":  dto.ShipperCompanyID,
		"model_id":            dto.ModelID,
		"stock_id":            dto.StockID,
		"serial":              dto.Serial,
		"amount":              dto.Amount,
		"status_id":           dto.StatusID,
		"responsible_user_id": dto.ResponsibleUserID,
		"pin_code":            dto.PinCode,
		"comment":             dto.Comment,
		"created_by":          dto.CreatedBy,
		"created_at":          dto.CreatedAt,
		"parent_id":           dto.ParentID,
	}
}

func toDomain(dto UnitDTO) (*unit.Unit, error) {
	return unit.Restore(dto.ID, unit.Attributes{
		OwnerCompanyID:    dto.OwnerCompanyID,
		ShipperCompanyID:  dto.ShipperCompanyID,
		ModelID:           dto.ModelID,
		StockID:           dto.StockID,
		Serial:            dto.Serial,
		Amount:            dto.Amount,
		Status:            unit.Status(dto.StatusID),
		ResponsibleUserID: dto.ResponsibleUserID,
		PinCode:           dto.PinCode,
		Comment:           dto.Comment,
		CreatedBy:         dto.CreatedBy,
		CreatedAt:         dto.CreatedAt,
		ParentID:          dto.ParentID,
	}, dto.Version)
}
