package audit

import (
	"errors"
	"strings"
	"time"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable line of a unit's audit log.
type Entry struct {
	id        int64
	unitID    int64
	actorID   int64
	action    string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewEntry creates an entry that has not been stored yet.
//
// Example:
//
//	entry, err := audit.NewEntry(u.ID(), actorID, audit.StatusTransition(old, u.Status()), time.Now())
func NewEntry(unitID, actorID int64, action string, at time.Time) (*Entry, error) {
	e := &Entry{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		e.setUnitID(unitID),
		e.setActorID(actorID),
		e.setAction(action),
	); err != nil {
		return nil, err
	}
	e.createdAt = at
	return e, nil
}

// RestoreEntry rebuilds a stored entry.
func RestoreEntry(id, unitID, actorID int64, action string, at time.Time) (*Entry, error) {
	e, err := NewEntry(unitID, actorID, action, at)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 1, nil)
	}
	e.id = id
	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() int64            { return e.id }
func (e *Entry) UnitID() int64        { return e.unitID }
func (e *Entry) ActorID() int64       { return e.actorID }
func (e *Entry) Action() string       { return e.action }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// MarkStored sets the id assigned by the store.
func (e *Entry) MarkStored(id int64) {
	e.id = id
}

func (e *Entry) setUnitID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("unit id")
	}
	e.unitID = id
	return nil
}

func (e *Entry) setActorID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("actor id")
	}
	e.actorID = id
	return nil
}

func (e *Entry) setAction(action string) error {
	if strings.TrimSpace(action) == "" {
		return errs.NewValueIsRequiredError("action")
	}
	e.action = action
	return nil
}
