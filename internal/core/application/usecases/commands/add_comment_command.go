package commands

import (
	"errors"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrAddCommentCommandIsNotConstructed = errors.New(
	"AddCommentCommand must be created via NewAddCommentCommand constructor",
)

type AddCommentCommand struct {
	unitID  int64
	text    string
	actorID int64

	guard guard.ConstructorGuard
}

func NewAddCommentCommand(unitID int64, text string, actorID int64) (AddCommentCommand, error) {
	text = strings.TrimSpace(text)
	if err := errors.Join(
		requireID("unit id", unitID),
		requireText(text),
	); err != nil {
		return AddCommentCommand{}, err
	}
	if actorID <= 0 {
		return AddCommentCommand{}, ErrActorIsRequired
	}
	return AddCommentCommand{unitID: unitID, text: text, actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (c AddCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddCommentCommandIsNotConstructed)
}

func (c AddCommentCommand) UnitID() int64  { return c.unitID }
func (c AddCommentCommand) Text() string   { return c.text }
func (c AddCommentCommand) ActorID() int64 { return c.actorID }

func requireID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	return nil
}
