package unit

import "strconv"

// Snapshot is a flat view of a unit keyed by column name. Absent references
// are empty strings. created_at is never part of a snapshot because every save
// restamps it.
type Snapshot map[string]string

// Snapshot captures the current state of u.
func (u *Unit) Snapshot() Snapshot {
	a := u.attrs
	return Snapshot{
		"id":                  formatID(u.id),
		"owner_company_id":    formatID(a.OwnerCompanyID),
		"shipper_company_id":  formatRef(a.ShipperCompanyID),
		"model_id":            formatID(a.ModelID),
		"stock_id":            formatID(a.StockID),
		"serial":              a.Serial,
		"amount":              strconv.Itoa(a.Amount),
		"status_id":           strconv.Itoa(int(a.Status)),
		"responsible_user_id": formatRef(a.ResponsibleUserID),
		"pin_code":            a.PinCode,
		"comment":             a.Comment,
		"created_by":          formatID(a.CreatedBy),
		"parent_id":           formatRef(a.ParentID),
	}
}

// Diff returns the entries of after whose value is missing from before or
// differs from it. For a unit that did not exist before, pass a nil or empty
// before and every field is reported.
func Diff(before, after Snapshot) Snapshot {
	out := make(Snapshot)
	for key, value := range after {
		if old, ok := before[key]; !ok || old != value {
			out[key] = value
		}
	}
	return out
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func formatRef(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
