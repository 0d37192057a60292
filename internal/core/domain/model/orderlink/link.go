// Package orderlink models the association between a unit and a work order.
// A unit has at most one link at a time; replacing a link deletes the old one
// before the new one is inserted.
package orderlink

import (
	"errors"
	"strings"
	"time"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// DefaultComment is used when a unit is linked to an order without a comment.
const DefaultComment = "manual link of unit to order"

var ErrLinkIsNotConstructed = errors.New("Link must be created via NewLink or RestoreLink")

type Link struct {
	unitID   int64
	orderID  int64
	comment  string
	linkedBy int64
	linkedAt time.Time
	guard    guard.ConstructorGuard
}

// NewLink links unitID to orderID. An empty comment is replaced by DefaultComment.
func NewLink(unitID, orderID int64, comment string, linkedBy int64, at time.Time) (*Link, error) {
	l := &Link{guard: guard.NewConstructorGuard(), linkedAt: at}

	if err := errors.Join(
		requirePositive("unit id", unitID),
		requirePositive("order id", orderID),
		requirePositive("linked by", linkedBy),
	); err != nil {
		return nil, err
	}

	l.unitID = unitID
	l.orderID = orderID
	l.linkedBy = linkedBy
	l.comment = strings.TrimSpace(comment)
	if l.comment == "" {
		l.comment = DefaultComment
	}
	return l, nil
}

// RestoreLink rebuilds a stored link. The stored comment is kept as is.
func RestoreLink(unitID, orderID int64, comment string, linkedBy int64, at time.Time) (*Link, error) {
	l, err := NewLink(unitID, orderID, comment, linkedBy, at)
	if err != nil {
		return nil, err
	}
	l.comment = comment
	return l, nil
}

func (l *Link) Validate() error {
	if l == nil {
		return ErrLinkIsNotConstructed
	}
	return l.guard.Validate(ErrLinkIsNotConstructed)
}

func (l *Link) UnitID() int64       { return l.unitID }
func (l *Link) OrderID() int64      { return l.orderID }
func (l *Link) Comment() string     { return l.comment }
func (l *Link) LinkedBy() int64     { return l.linkedBy }
func (l *Link) LinkedAt() time.Time { return l.linkedAt }

func requirePositive(name string, v int64) error {
	if v <= 0 {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
