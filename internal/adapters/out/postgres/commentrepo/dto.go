// Package commentrepo persists unit comments in the unit_comments table.
package commentrepo

import (
	"time"

	"warehouse/internal/core/domain/model/comment"
	"warehouse/internal/core/domain/model/unit"
)

type CommentDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UnitID    int64
	ActorID   int64
	Text      string
	StatusID  int
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (CommentDTO) TableName() string {
	return "unit_comments"
}

func fromDomain(c *comment.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		UnitID:    c.UnitID(),
		ActorID:   c.ActorID(),
		Text:      c.Text(),
		StatusID:  int(c.Status()),
		CreatedAt: c.CreatedAt(),
	}
}

func toDomain(dto CommentDTO) (*comment.Comment, error) {
	return comment.RestoreComment(dto.ID, dto.UnitID, dto.ActorID, dto.Text, unit.Status(dto.StatusID), dto.CreatedAt)
}
