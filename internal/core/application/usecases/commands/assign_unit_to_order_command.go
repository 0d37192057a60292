package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrAssignUnitToOrderCommandIsNotConstructed = errors.New(
	"AssignUnitToOrderCommand must be created via NewAssignUnitToOrderCommand constructor",
)

// AssignUnitToOrderCommand links a stored unit to a work order, replacing any
// previous link. An empty comment is replaced by orderlink.DefaultComment.
type AssignUnitToOrderCommand struct {
	unitID  int64
	orderID int64
	comment string
	actorID int64

	guard guard.ConstructorGuard
}

func NewAssignUnitToOrderCommand(unitID, orderID int64, comment string, actorID int64) (AssignUnitToOrderCommand, error) {
	if err := errors.Join(
		requireID("unit id", unitID),
		requireID("order id", orderID),
	); err != nil {
		return AssignUnitToOrderCommand{}, err
	}
	if actorID <= 0 {
		return AssignUnitToOrderCommand{}, ErrActorIsRequired
	}
	return AssignUnitToOrderCommand{
		unitID:  unitID,
		orderID: orderID,
		comment: comment,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignUnitToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignUnitToOrderCommandIsNotConstructed)
}

func (c AssignUnitToOrderCommand) UnitID() int64   { return c.unitID }
func (c AssignUnitToOrderCommand) OrderID() int64  { return c.orderID }
func (c AssignUnitToOrderCommand) Comment() string { return c.comment }
func (c AssignUnitToOrderCommand) ActorID() int64  { return c.actorID }
