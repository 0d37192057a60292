package unit

// UpdateRequest lists the fields a caller may change on a unit. A nil field is
// left untouched. For the nullable references (shipper, responsible, parent)
// a value of 0 clears the reference.
//
// OrderID and OrderComment are not unit fields. They drive the order link
// replacement that follows a save. On create the link is only written for a
// positive OrderID.
type UpdateRequest struct {
	ID                *int64
	OwnerCompanyID    *int64
	ShipperCompanyID  *int64
	ModelID           *int64
	StockID           *int64
	Serial            *string
	Amount            *int
	StatusID          *int
	ResponsibleUserID *int64
	PinCode           *string
	Comment           *string
	ParentID          *int64
	OrderID           *int64
	OrderComment      *string
}

// UnitID returns the target unit id, 0 when the request creates a unit.
func (r UpdateRequest) UnitID() int64 {
	if r.ID == nil || *r.ID < 0 {
		return 0
	}
	return *r.ID
}

// HasSerial reports whether the request carries a non-empty serial number.
func (r UpdateRequest) HasSerial() bool {
	return r.Serial != nil && *r.Serial != ""
}
