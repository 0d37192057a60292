// Package orderlinkrepo persists unit to order links in the order_units table.
package orderlinkrepo

import (
	"time"

	"warehouse/internal/core/domain/model/orderlink"
)

type LinkDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	UnitID   int64
	OrderID  int64
	Comment  string
	LinkedBy int64
	LinkedAt time.Time
}

func (LinkDTO) TableName() string {
	return "order_units"
}

func fromDomain(l *orderlink.Link) LinkDTO {
	return LinkDTO{
		UnitID:   l.UnitID(),
		OrderID:  l.OrderID(),
		Comment:  l.Comment(),
		LinkedBy: l.LinkedBy(),
		LinkedAt: l.LinkedAt(),
	}
}

func toDomain(dto LinkDTO) (*orderlink.Link, error) {
	return orderlink.RestoreLink(dto.UnitID, dto.OrderID, dto.Comment, dto.LinkedBy, dto.LinkedAt)
}
