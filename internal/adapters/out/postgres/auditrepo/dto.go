// Package auditrepo persists audit entries in the unit_logs table.
package auditrepo

import (
	"time"

	"warehouse/internal/core/domain/model/audit"
)

type EntryDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UnitID    int64
	ActorID   int64
	Action    string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (EntryDTO) TableName() string {
	return "unit_logs"
}

func fromDomain(e *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:        e.ID(),
		UnitID:    e.UnitID(),
		ActorID:   e.ActorID(),
		Action:    e.Action(),
		CreatedAt: e.CreatedAt(),
	}
}

func toDomain(dto EntryDTO) (*audit.Entry, error) {
	return audit.RestoreEntry(dto.ID, dto.UnitID, dto.ActorID, dto.Action, dto.CreatedAt)
}
