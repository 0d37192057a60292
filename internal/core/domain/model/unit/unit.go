package unit

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit or Restore")

const MaxPinCodeLength = 255

// Attributes is the flat persistent state of a unit. It is used to restore a
// unit from storage and to hand its state to adapters.
type Attributes struct {
	OwnerCompanyID    int64
	ShipperCompanyID  *int64
	ModelID           int64
	StockID           int64
	Serial            string
	Amount            int
	Status            Status
	ResponsibleUserID *int64
	PinCode           string
	Comment           string
	CreatedBy         int64
	CreatedAt         time.Time
	ParentID          *int64
}

// Unit is a tracked inventory record: a single serialized device or a batch of
// identical un-serialized items.
//
// Unit follows these invariants:
//   - amount is never negative
//   - status is one of the catalog values
//   - id is 0 until the store assigns one
//   - version grows by one with every stored update and is checked on delete
//
// Reference fields (owner, model, stock, responsible) are plain ids. Whether
// they point at existing rows is checked by the application layer, which owns
// the reference lookups.
type Unit struct {
	id      int64
	attrs   Attributes
	version int
	guard   guard.ConstructorGuard
}

// NewUnit starts a unit that has not been stored yet. It has status New and
// amount 0 until a request is applied.
//
// Example:
//
//	u := unit.NewUnit()
//	u.Apply(req)
//	u.Stamp(actorID, time.Now())
//	if verr := u.Check(); verr.HasErrors() {
//	    return verr
//	}
func NewUnit() *Unit {
	return &Unit{
		attrs: Attributes{Status: New},
		guard: guard.NewConstructorGuard(),
	}
}

// Restore rebuilds a stored unit. Only invariants that storage cannot violate
// on its own are checked here.
func Restore(id int64, attrs Attributes, version int) (*Unit, error) {
	u := &Unit{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setAmount(attrs.Amount),
		attrs.Status.Validate(),
	); err != nil {
		return nil, err
	}

	u.attrs = attrs
	u.attrs.ShipperCompanyID = copyRef(attrs.ShipperCompanyID)
	u.attrs.ResponsibleUserID = copyRef(attrs.ResponsibleUserID)
	u.attrs.ParentID = copyRef(attrs.ParentID)
	u.version = version
	return u, nil
}

func (u *Unit) Validate() error {
	if u == nil {
		return ErrUnitIsNotConstructed
	}
	return u.guard.Validate(ErrUnitIsNotConstructed)
}

func (u *Unit) ID() int64                { return u.id }
func (u *Unit) IsNew() bool              { return u.id == 0 }
func (u *Unit) Version() int             { return u.version }
func (u *Unit) OwnerCompanyID() int64    { return u.attrs.OwnerCompanyID }
func (u *Unit) ShipperCompanyID() *int64 { return copyRef(u.attrs.ShipperCompanyID) }
func (u *Unit) ModelID() int64           { return u.attrs.ModelID }
func (u *Unit) StockID() int64           { return u.attrs.StockID }
func (u *Unit) Serial() string           { return u.attrs.Serial }
func (u *Unit) Amount() int              { return u.attrs.Amount }
func (u *Unit) Status() Status           { return u.attrs.Status }
func (u *Unit) ResponsibleUserID() *int64 {
	return copyRef(u.attrs.ResponsibleUserID)
}
func (u *Unit) PinCode() string      { return u.attrs.PinCode }
func (u *Unit) Comment() string      { return u.attrs.Comment }
func (u *Unit) CreatedBy() int64     { return u.attrs.CreatedBy }
func (u *Unit) CreatedAt() time.Time { return u.attrs.CreatedAt }
func (u *Unit) ParentID() *int64     { return copyRef(u.attrs.ParentID) }

// Attributes returns a copy of the unit state.
func (u *Unit) Attributes() Attributes {
	out := u.attrs
	out.ShipperCompanyID = copyRef(u.attrs.ShipperCompanyID)
	out.ResponsibleUserID = copyRef(u.attrs.ResponsibleUserID)
	out.ParentID = copyRef(u.attrs.ParentID)
	return out
}

// Apply copies every field present in req onto the unit. Values are not
// validated here so that Check can report all violations at once.
func (u *Unit) Apply(req UpdateRequest) {
	if req.OwnerCompanyID != nil {
		u.attrs.OwnerCompanyID = *req.OwnerCompanyID
	}
	if req.ShipperCompanyID != nil {
		u.attrs.ShipperCompanyID = refOrNil(*req.ShipperCompanyID)
	}
	if req.ModelID != nil {
		u.attrs.ModelID = *req.ModelID
	}
	if req.StockID != nil {
		u.attrs.StockID = *req.StockID
	}
	if req.Serial != nil {
		u.attrs.Serial = *req.Serial
	}
	if req.Amount != nil {
		u.attrs.Amount = *req.Amount
	}
	if req.StatusID != nil {
		u.attrs.Status = Status(*req.StatusID)
	}
	if req.ResponsibleUserID != nil {
		u.attrs.ResponsibleUserID = refOrNil(*req.ResponsibleUserID)
	}
	if req.PinCode != nil {
		u.attrs.PinCode = *req.PinCode
	}
	if req.Comment != nil {
		u.attrs.Comment = *req.Comment
	}
	if req.ParentID != nil {
		u.attrs.ParentID = refOrNil(*req.ParentID)
	}
}

// Stamp records who wrote the unit and when. Every save restamps the unit.
func (u *Unit) Stamp(actorID int64, now time.Time) {
	u.attrs.CreatedBy = actorID
	u.attrs.CreatedAt = now
}

// Check reports every intrinsic violation of the unit state, keyed by the
// field names used in requests. It returns an empty error set when the unit
// is consistent.
func (u *Unit) Check() *errs.ValidationError {
	verr := errs.NewValidationError()
	if u.attrs.OwnerCompanyID <= 0 {
		verr.Add("owner_company_id", "value is required")
	}
	if u.attrs.ModelID <= 0 {
		verr.Add("model_id", "value is required")
	}
	if u.attrs.StockID <= 0 {
		verr.Add("stock_id", "value is required")
	}
	if u.attrs.CreatedBy <= 0 {
		verr.Add("created_by", "value is required")
	}
	if u.attrs.Status == Unknown {
		verr.Add("status_id", "value is required")
	} else if err := u.attrs.Status.Validate(); err != nil {
		verr.Add("status_id", "unknown status")
	}
	if u.attrs.Amount < 0 {
		verr.Add("amount", "must not be negative")
	}
	if utf8.RuneCountInString(u.attrs.PinCode) > MaxPinCodeLength {
		verr.Add("pin_code", fmt.Sprintf("must be at most %d characters", MaxPinCodeLength))
	}
	if u.id > 0 && u.attrs.ParentID != nil && *u.attrs.ParentID == u.id {
		verr.Add("parent_id", "unit cannot be its own parent")
	}
	return verr
}

// Withdraw takes amount items out of the unit.
func (u *Unit) Withdraw(amount int) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if amount <= 0 || amount > u.attrs.Amount {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, u.attrs.Amount)
	}
	u.attrs.Amount -= amount
	return nil
}

// Portion describes the part of a unit that is split off into a new unit.
// Zero values of OwnerCompanyID, Status and StockID keep the source value.
type Portion struct {
	Amount            int
	OwnerCompanyID    int64
	ResponsibleUserID int64
	Comment           string
	Status            Status
	StockID           int64
	CreatedBy         int64
	CreatedAt         time.Time
}

// Split builds the child unit for p. The child copies every field of u and
// then takes the portion's amount, owner, responsible, comment, status and
// stock, with u as its parent. The source unit is not modified, callers
// withdraw the amount from it separately.
func (u *Unit) Split(p Portion) (*Unit, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if u.IsNew() {
		return nil, errs.NewValueIsRequiredError("parent id")
	}
	if p.Amount <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("amount", p.Amount, 1, nil)
	}

	child := &Unit{
		attrs: u.Attributes(),
		guard: guard.NewConstructorGuard(),
	}
	child.attrs.Amount = p.Amount
	if p.OwnerCompanyID > 0 {
		child.attrs.OwnerCompanyID = p.OwnerCompanyID
	}
	child.attrs.ResponsibleUserID = refOrNil(p.ResponsibleUserID)
	child.attrs.Comment = p.Comment
	if p.Status != Unknown {
		child.attrs.Status = p.Status
	}
	if p.StockID > 0 {
		child.attrs.StockID = p.StockID
	}
	parent := u.id
	child.attrs.ParentID = &parent
	child.attrs.CreatedBy = p.CreatedBy
	child.attrs.CreatedAt = p.CreatedAt
	return child, nil
}

// ChangeStatus switches the unit to status s.
func (u *Unit) ChangeStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	u.attrs.Status = s
	return nil
}

// AssignResponsible sets the custodian. A nil or non-positive id clears it.
func (u *Unit) AssignResponsible(userID *int64) {
	if userID == nil {
		u.attrs.ResponsibleUserID = nil
		return
	}
	u.attrs.ResponsibleUserID = refOrNil(*userID)
}

// MarkStored is called by the store after a successful write with the
// assigned id and the stored version.
func (u *Unit) MarkStored(id int64, version int) {
	u.id = id
	u.version = version
}

func (u *Unit) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, nil)
	}
	u.id = id
	return nil
}

func (u *Unit) setAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	u.attrs.Amount = amount
	return nil
}

func refOrNil(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

func copyRef(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
