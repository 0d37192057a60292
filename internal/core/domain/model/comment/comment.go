// Package comment models free-text remarks on a unit. Every comment remembers
// the unit status at the moment it was written.
package comment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCommentIsNotConstructed = errors.New("Comment must be created via NewComment or RestoreComment")

type Comment struct {
	id        int64
	unitID    int64
	actorID   int64
	text      string
	status    unit.Status
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewComment creates a comment bound to status. Surrounding whitespace is trimmed.
func NewComment(unitID, actorID int64, text string, status unit.Status, at time.Time) (*Comment, error) {
	c := &Comment{guard: guard.NewConstructorGuard(), createdAt: at}
	text = strings.TrimSpace(text)

	if err := errors.Join(
		c.setUnitID(unitID),
		c.setActorID(actorID),
		c.setText(text),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	c.status = status
	return c, nil
}

func RestoreComment(id, unitID, actorID int64, text string, status unit.Status, at time.Time) (*Comment, error) {
	c, err := NewComment(unitID, actorID, text, status, at)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 1, nil)
	}
	c.id = id
	return c, nil
}

func (c *Comment) Validate() error {
	if c == nil {
		return ErrCommentIsNotConstructed
	}
	return c.guard.Validate(ErrCommentIsNotConstructed)
}

func (c *Comment) ID() int64            { return c.id }
func (c *Comment) UnitID() int64        { return c.unitID }
func (c *Comment) ActorID() int64       { return c.actorID }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) Status() unit.Status  { return c.status }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) MarkStored(id int64) {
	c.id = id
}

// StatusChangeText is the text of the comment written when a unit changes
// status. responsible is the custodian's short name and may be empty.
func StatusChangeText(from, to unit.Status, responsible string) string {
	return fmt.Sprintf("status changed from: %s to: %s; responsible: %s",
		from.WithColor(), to.WithColor(), responsible)
}

func (c *Comment) setUnitID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("unit id")
	}
	c.unitID = id
	return nil
}

func (c *Comment) setActorID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("actor id")
	}
	c.actorID = id
	return nil
}

func (c *Comment) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	c.text = text
	return nil
}
