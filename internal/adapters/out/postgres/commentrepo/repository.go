package commentrepo

import (
	"context"

	"warehouse/internal/adapters/out/postgres/pgerr"
	"warehouse/internal/core/domain/model/comment"

	"gorm.io/gorm"
)

// GormCommentRepository implements ports.CommentRepository using GORM.
type GormCommentRepository struct {
	db *gorm.DB
}

func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Add(ctx context.Context, c *comment.Comment) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Map(err, "comment", nil)
	}
	c.MarkStored(dto.ID)
	return nil
}

// ListByUnit returns the unit's comments newest first.
func (r *GormCommentRepository) ListByUnit(ctx context.Context, unitID int64) ([]*comment.Comment, error) {
	var dtos []CommentDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*comment.Comment, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *GormCommentRepository) DeleteByUnit(ctx context.Context, unitID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("unit_id = ?", unitID).Delete(&CommentDTO{})
	return result.RowsAffected, result.Error
}
