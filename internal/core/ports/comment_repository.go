package ports

import (
	"context"

	"warehouse/internal/core/domain/model/comment"
)

type CommentRepository interface {
	Add(ctx context.Context, c *comment.Comment) error

	// ListByUnit returns comments newest first.
	ListByUnit(ctx context.Context, unitID int64) ([]*comment.Comment, error)

	DeleteByUnit(ctx context.Context, unitID int64) (int64, error)
}
