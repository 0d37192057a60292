// Package referencerepo answers existence and name lookups on the reference
// tables units point at.
package referencerepo

import (
	"context"
	"fmt"

	"warehouse/internal/adapters/out/postgres/pgerr"
	"warehouse/internal/core/domain/model/person"
	"warehouse/internal/core/ports"

	"gorm.io/gorm"
)

var tables = map[ports.Reference]string{
	ports.CompanyRef: "companies",
	ports.ModelRef:   "device_models",
	ports.StockRef:   "stocks",
	ports.UserRef:    "users",
	ports.OrderRef:   "orders",
	ports.UnitRef:    "units",
}

// GormReferenceRepository implements ports.ReferenceRepository using GORM.
type GormReferenceRepository struct {
	db *gorm.DB
}

func NewGormReferenceRepository(db *gorm.DB) *GormReferenceRepository {
	return &GormReferenceRepository{db: db}
}

func (r *GormReferenceRepository) Exists(ctx context.Context, ref ports.Reference, id int64) (bool, error) {
	table, ok := tables[ref]
	if !ok {
		return false, fmt.Errorf("unknown reference %q", ref)
	}
	if id <= 0 {
		return false, nil
	}

	var exists bool
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = ?)", table), id).
		Scan(&exists).Error
	return exists, err
}

type modelRow struct {
	ID         int64
	Name       string
	VendorID   *int64
	VendorName *string
	TypeID     int64
}

func (r *GormReferenceRepository) Model(ctx context.Context, id int64) (ports.ModelInfo, error) {
	var row modelRow
	err := r.db.WithContext(ctx).
		Table("device_models AS m").
		Select("m.id, m.name, m.vendor_id, v.name AS vendor_name, m.type_id").
		Joins("LEFT JOIN vendors v ON v.id = m.vendor_id").
		Where("m.id = ?", id).
		Take(&row).Error
	if err != nil {
		return ports.ModelInfo{}, pgerr.Map(err, "model", id)
	}

	info := ports.ModelInfo{ID: row.ID, Name: row.Name, TypeID: row.TypeID}
	if row.VendorID != nil {
		info.VendorID = *row.VendorID
	}
	if row.VendorName != nil {
		info.VendorName = *row.VendorName
	}
	return info, nil
}

type userRow struct {
	FirstName  string
	LastName   string
	MiddleName string
}

func (r *GormReferenceRepository) UserShortName(ctx context.Context, id int64) (string, error) {
	var row userRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("first_name, last_name, middle_name").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return "", pgerr.Map(err, "user", id)
	}
	return person.ShortName(row.LastName, row.FirstName, row.MiddleName), nil
}
