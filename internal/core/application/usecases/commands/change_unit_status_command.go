package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/guard"
)

var ErrChangeUnitStatusCommandIsNotConstructed = errors.New(
	"ChangeUnitStatusCommand must be created via NewChangeUnitStatusCommand constructor",
)

// ChangeUnitStatusCommand switches a unit to another status. A non-nil
// responsibleID also hands the unit over; 0 clears the custodian.
type ChangeUnitStatusCommand struct {
	unitID        int64
	status        unit.Status
	responsibleID *int64
	actorID       int64

	guard guard.ConstructorGuard
}

func NewChangeUnitStatusCommand(
	unitID int64,
	status unit.Status,
	responsibleID *int64,
	actorID int64,
) (ChangeUnitStatusCommand, error) {
	if err := errors.Join(
		requireID("unit id", unitID),
		status.Validate(),
	); err != nil {
		return ChangeUnitStatusCommand{}, err
	}
	if actorID <= 0 {
		return ChangeUnitStatusCommand{}, ErrActorIsRequired
	}

	cmd := ChangeUnitStatusCommand{
		unitID:  unitID,
		status:  status,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}
	if responsibleID != nil {
		id := *responsibleID
		cmd.responsibleID = &id
	}
	return cmd, nil
}

func (c ChangeUnitStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeUnitStatusCommandIsNotConstructed)
}

func (c ChangeUnitStatusCommand) UnitID() int64       { return c.unitID }
func (c ChangeUnitStatusCommand) Status() unit.Status { return c.status }
func (c ChangeUnitStatusCommand) ActorID() int64      { return c.actorID }

// ResponsibleID returns nil when the custodian stays unchanged.
func (c ChangeUnitStatusCommand) ResponsibleID() *int64 {
	if c.responsibleID == nil {
		return nil
	}
	id := *c.responsibleID
	return &id
}
