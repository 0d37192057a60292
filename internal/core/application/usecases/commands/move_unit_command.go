package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrMoveUnitCommandIsNotConstructed = errors.New(
	"MoveUnitCommand must be created via NewMoveUnitCommand constructor",
)

// MoveUnitCommand relocates a unit or moves part of its amount.
//
// The request fields have the same meaning as for SaveUnitCommand. For a
// split, Amount is the quantity to move and ResponsibleUserID the new
// custodian of the split off part.
type MoveUnitCommand struct {
	unitID  int64
	request unit.UpdateRequest
	actorID int64

	guard guard.ConstructorGuard
}

func NewMoveUnitCommand(unitID int64, request unit.UpdateRequest, actorID int64) (MoveUnitCommand, error) {
	if unitID <= 0 {
		return MoveUnitCommand{}, errs.NewValueIsRequiredError("unit id")
	}
	if actorID <= 0 {
		return MoveUnitCommand{}, ErrActorIsRequired
	}
	return MoveUnitCommand{
		unitID:  unitID,
		request: request,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MoveUnitCommand) Validate() error {
	return c.guard.Validate(ErrMoveUnitCommandIsNotConstructed)
}

func (c MoveUnitCommand) UnitID() int64 {
	return c.unitID
}

// Request returns the request with its id pinned to the moved unit.
func (c MoveUnitCommand) Request() unit.UpdateRequest {
	req := c.request
	id := c.unitID
	req.ID = &id
	return req
}

func (c MoveUnitCommand) ActorID() int64 {
	return c.actorID
}
