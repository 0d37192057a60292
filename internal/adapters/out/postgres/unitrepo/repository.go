package unitrepo

import (
	"context"

	"warehouse/internal/adapters/out/postgres/pgerr"
	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUnitRepository implements ports.UnitRepository using GORM.
type GormUnitRepository struct {
	db *gorm.DB
}

func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// Add inserts the unit with version 1 and marks it stored.
func (r *GormUnitRepository) Add(ctx context.Context, u *unit.Unit) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	dto.ID = 0
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Map(err, "unit", nil)
	}

	u.MarkStored(dto.ID, dto.Version)
	return nil
}

// Update writes every mutable column and bumps the version. The stored version
// is not compared: concurrent updates are last writer wins.
func (r *GormUnitRepository) Update(ctx context.Context, u *unit.Unit) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	values := dto.columns()
	values["version"] = gorm.Expr("version + 1")

	var stored UnitDTO
	result := r.db.WithContext(ctx).
		Model(&stored).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "version"}}}).
		Where("id = ?", dto.ID).
		Updates(values)
	if result.Error != nil {
		return pgerr.Map(result.Error, "unit", dto.ID)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("unit", dto.ID)
	}

	u.MarkStored(dto.ID, stored.Version)
	return nil
}

func (r *GormUnitRepository) Get(ctx context.Context, id int64) (*unit.Unit, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 1, nil)
	}

	var dto UnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		return nil, pgerr.Map(err, "unit", id)
	}
	return toDomain(dto)
}

// Delete removes the row only while its version matches. order_units rows go
// with it through ON DELETE CASCADE.
func (r *GormUnitRepository) Delete(ctx context.Context, u *unit.Unit) error {
	if err := u.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", u.ID(), u.Version()).
		Delete(&UnitDTO{})
	if result.Error != nil {
		return pgerr.Map(result.Error, "unit", u.ID())
	}
	if result.RowsAffected == 0 {
		return errs.ErrConcurrencyConflict
	}
	return nil
}
