package auditrepo

import (
	"context"

	"warehouse/internal/adapters/out/postgres/pgerr"
	"warehouse/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditRepository implements ports.AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

func (r *GormAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Map(err, "audit entry", nil)
	}
	entry.MarkStored(dto.ID)
	return nil
}

func (r *GormAuditRepository) ListByUnit(ctx context.Context, unitID int64) ([]*audit.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *GormAuditRepository) DeleteByUnit(ctx context.Context, unitID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("unit_id = ?", unitID).Delete(&EntryDTO{})
	return result.RowsAffected, result.Error
}
