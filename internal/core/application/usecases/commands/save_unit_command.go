package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/guard"
)

var (
	ErrSaveUnitCommandIsNotConstructed = errors.New(
		"SaveUnitCommand must be created via NewSaveUnitCommand constructor",
	)
	ErrActorIsRequired = errors.New("actor id is required")
)

// SaveUnitCommand creates a unit or updates an existing one.
//
// A request without id (or with id 0) registers a new unit. A request with
// an id loads that unit and applies the present fields; OrderID then replaces
// the unit's order link.
//
// Example:
//
//	cmd, err := NewSaveUnitCommand(unit.UpdateRequest{
//	    OwnerCompanyID: &owner,
//	    ModelID:        &model,
//	    StockID:        &stock,
//	    Amount:         &amount,
//	}, actorID)
//	u, err := handler.Handle(ctx, cmd)
type SaveUnitCommand struct {
	request unit.UpdateRequest
	actorID int64

	guard guard.ConstructorGuard
}

func NewSaveUnitCommand(request unit.UpdateRequest, actorID int64) (SaveUnitCommand, error) {
	if actorID <= 0 {
		return SaveUnitCommand{}, ErrActorIsRequired
	}
	return SaveUnitCommand{
		request: request,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SaveUnitCommand) Validate() error {
	return c.guard.Validate(ErrSaveUnitCommandIsNotConstructed)
}

func (c SaveUnitCommand) Request() unit.UpdateRequest {
	return c.request
}

func (c SaveUnitCommand) ActorID() int64 {
	return c.actorID
}
