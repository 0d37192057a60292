package commands

import (
	"errors"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrDeleteUnitCommandIsNotConstructed = errors.New(
	"DeleteUnitCommand must be created via NewDeleteUnitCommand constructor",
)

type DeleteUnitCommand struct {
	unitID  int64
	actorID int64

	guard guard.ConstructorGuard
}

func NewDeleteUnitCommand(unitID, actorID int64) (DeleteUnitCommand, error) {
	if unitID <= 0 {
		return DeleteUnitCommand{}, errs.NewValueIsRequiredError("unit id")
	}
	if actorID <= 0 {
		return DeleteUnitCommand{}, ErrActorIsRequired
	}
	return DeleteUnitCommand{unitID: unitID, actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteUnitCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUnitCommandIsNotConstructed)
}

func (c DeleteUnitCommand) UnitID() int64  { return c.unitID }
func (c DeleteUnitCommand) ActorID() int64 { return c.actorID }
