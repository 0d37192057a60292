package orderlinkrepo

import (
	"context"

	"warehouse/internal/adapters/out/postgres/pgerr"
	"warehouse/internal/core/domain/model/orderlink"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderLinkRepository implements ports.OrderLinkRepository using GORM.
type GormOrderLinkRepository struct {
	db *gorm.DB
}

func NewGormOrderLinkRepository(db *gorm.DB) *GormOrderLinkRepository {
	return &GormOrderLinkRepository{db: db}
}

// Add inserts the link. Constraint violations are reported as validation
// errors on order_id.
func (r *GormOrderLinkRepository) Add(ctx context.Context, link *orderlink.Link) error {
	if err := link.Validate(); err != nil {
		return err
	}

	dto := fromDomain(link)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if err == nil {
		return nil
	}

	if _, ok := pgerr.UniqueViolation(err); ok {
		verr := errs.NewValidationError()
		verr.Add("order_id", "unit is already linked to this order")
		return verr
	}
	if _, ok := pgerr.ForeignKeyViolation(err); ok {
		verr := errs.NewValidationError()
		verr.Add("order_id", "must reference an existing row")
		return verr
	}
	return pgerr.Map(err, "order link", link.UnitID())
}

// GetByUnit returns the most recent link of the unit.
func (r *GormOrderLinkRepository) GetByUnit(ctx context.Context, unitID int64) (*orderlink.Link, error) {
	var dto LinkDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		return nil, pgerr.Map(err, "order link", unitID)
	}
	return toDomain(dto)
}

func (r *GormOrderLinkRepository) DeleteByUnit(ctx context.Context, unitID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("unit_id = ?", unitID).Delete(&LinkDTO{})
	return result.RowsAffected, result.Error
}
