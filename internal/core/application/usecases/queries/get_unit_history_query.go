package queries

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/person"
	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetUnitHistoryQueryIsNotConstructed = errors.New(
	"GetUnitHistoryQuery must be created via NewGetUnitHistoryQuery constructor",
)

type GetUnitHistoryQuery struct {
	unitID int64
	guard  guard.ConstructorGuard
}

func NewGetUnitHistoryQuery(unitID int64) (GetUnitHistoryQuery, error) {
	if unitID <= 0 {
		return GetUnitHistoryQuery{}, errs.NewValueIsRequiredError("unit id")
	}
	return GetUnitHistoryQuery{unitID: unitID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUnitHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitHistoryQueryIsNotConstructed)
}

type AuditEntryView struct {
	ID        int64
	ActorID   int64
	ActorName string
	Action    string
	CreatedAt time.Time
}

type CommentView struct {
	ID          int64
	ActorID     int64
	ActorName   string
	Text        string
	StatusID    int
	StatusLabel string
	StatusColor string
	CreatedAt   time.Time
}

// UnitHistory holds the audit log and the comments of a unit, newest first.
type UnitHistory struct {
	UnitID   int64
	Entries  []AuditEntryView
	Comments []CommentView
}

type GetUnitHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetUnitHistoryQueryHandler(db *gorm.DB) GetUnitHistoryQueryHandler {
	return GetUnitHistoryQueryHandler{db: db}
}

type historyRow struct {
	ID         int64
	ActorID    int64
	LastName   *string
	FirstName  *string
	MiddleName *string
	Body       string
	StatusID   int
	CreatedAt  time.Time
}

func (r historyRow) actorName() string {
	return person.ShortName(deref(r.LastName), deref(r.FirstName), deref(r.MiddleName))
}

// Handle returns empty lists for a unit without history. The unit itself is
// not required to exist any more.
func (h GetUnitHistoryQueryHandler) Handle(ctx context.Context, query GetUnitHistoryQuery) (UnitHistory, error) {
	if err := query.Validate(); err != nil {
		return UnitHistory{}, err
	}

	history := UnitHistory{
		UnitID:   query.unitID,
		Entries:  []AuditEntryView{},
		Comments: []CommentView{},
	}

	var entries []historyRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT l.id, l.actor_id, a.last_name, a.first_name, a.middle_name,
			l.action AS body, 0 AS status_id, l.created_at
		FROM unit_logs l
		LEFT JOIN users a ON a.id = l.actor_id
		WHERE l.unit_id = ?
		ORDER BY l.created_at DESC, l.id DESC
	`, query.unitID).Scan(&entries).Error
	if err != nil {
		return UnitHistory{}, err
	}
	for _, e := range entries {
		history.Entries = append(history.Entries, AuditEntryView{
			ID:        e.ID,
			ActorID:   e.ActorID,
			ActorName: e.actorName(),
			Action:    e.Body,
			CreatedAt: e.CreatedAt,
		})
	}

	var comments []historyRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT c.id, c.actor_id, a.last_name, a.first_name, a.middle_name,
			c.text AS body, c.status_id, c.created_at
		FROM unit_comments c
		LEFT JOIN users a ON a.id = c.actor_id
		WHERE c.unit_id = ?
		ORDER BY c.created_at DESC, c.id DESC
	`, query.unitID).Scan(&comments).Error
	if err != nil {
		return UnitHistory{}, err
	}
	for _, c := range comments {
		status := unit.Status(c.StatusID)
		history.Comments = append(history.Comments, CommentView{
			ID:          c.ID,
			ActorID:     c.ActorID,
			ActorName:   c.actorName(),
			Text:        c.Body,
			StatusID:    c.StatusID,
			StatusLabel: status.Label(),
			StatusColor: status.Color(),
			CreatedAt:   c.CreatedAt,
		})
	}
	return history, nil
}
