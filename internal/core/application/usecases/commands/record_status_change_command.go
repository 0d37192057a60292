package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrRecordStatusChangeCommandIsNotConstructed = errors.New(
	"RecordStatusChangeCommand must be created via NewRecordStatusChangeCommand constructor",
)

// RecordStatusChangeCommand writes the comment that documents a status change.
// responsibleID may be 0 when nobody took over the unit.
type RecordStatusChangeCommand struct {
	unitID        int64
	from          unit.Status
	to            unit.Status
	responsibleID int64
	actorID       int64

	guard guard.ConstructorGuard
}

func NewRecordStatusChangeCommand(
	unitID int64,
	from, to unit.Status,
	responsibleID int64,
	actorID int64,
) (RecordStatusChangeCommand, error) {
	if unitID <= 0 {
		return RecordStatusChangeCommand{}, errs.NewValueIsRequiredError("unit id")
	}
	if actorID <= 0 {
		return RecordStatusChangeCommand{}, ErrActorIsRequired
	}
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return RecordStatusChangeCommand{}, err
	}
	return RecordStatusChangeCommand{
		unitID:        unitID,
		from:          from,
		to:            to,
		responsibleID: responsibleID,
		actorID:       actorID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RecordStatusChangeCommand) Validate() error {
	return c.guard.Validate(ErrRecordStatusChangeCommandIsNotConstructed)
}

func (c RecordStatusChangeCommand) UnitID() int64        { return c.unitID }
func (c RecordStatusChangeCommand) From() unit.Status    { return c.from }
func (c RecordStatusChangeCommand) To() unit.Status      { return c.to }
func (c RecordStatusChangeCommand) ResponsibleID() int64 { return c.responsibleID }
func (c RecordStatusChangeCommand) ActorID() int64       { return c.actorID }
