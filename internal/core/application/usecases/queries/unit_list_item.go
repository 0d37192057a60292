package queries

import (
	"time"

	"warehouse/internal/core/domain/model/person"
	"warehouse/internal/core/domain/model/unit"

	sq "github.com/Masterminds/squirrel"
)

// UnitListItem is one row of any unit listing.
type UnitListItem struct {
	ID                int64
	Serial            string
	Amount            int
	StatusID          int
	StatusLabel       string
	StatusColor       string
	ModelID           int64
	ModelName         string
	VendorName        string
	TypeID            int64
	OwnerCompanyID    int64
	OwnerName         string
	StockID           int64
	StockName         string
	ResponsibleUserID *int64
	ResponsibleName   string
	Comment           string
	ParentID          *int64
	CreatedAt         time.Time
}

type unitRow struct {
	ID                int64
	Serial            string
	Amount            int
	StatusID          int
	ModelID           int64
	ModelName         string
	VendorName        *string
	TypeID            int64
	OwnerCompanyID    int64
	OwnerName         string
	StockID           int64
	StockName         string
	ResponsibleUserID *int64
	RespLastName      *string
	RespFirstName     *string
	RespMiddleName    *string
	Comment           string
	ParentID          *int64
	CreatedAt         time.Time
}

// unitSelect joins the reference tables every listing shows.
func unitSelect() sq.SelectBuilder {
	return sq.Select(
		"u.id", "u.serial", "u.amount", "u.status_id",
		"u.model_id", "m.name AS model_name", "v.name AS vendor_name", "m.type_id",
		"u.owner_company_id", "c.name AS owner_name",
		"u.stock_id", "s.name AS stock_name",
		"u.responsible_user_id",
		"r.last_name AS resp_last_name", "r.first_name AS resp_first_name", "r.middle_name AS resp_middle_name",
		"u.comment", "u.parent_id", "u.created_at",
	).
		From("units u").
		Join("device_models m ON m.id = u.model_id").
		LeftJoin("vendors v ON v.id = m.vendor_id").
		Join("companies c ON c.id = u.owner_company_id").
		Join("stocks s ON s.id = u.stock_id").
		LeftJoin("users r ON r.id = u.responsible_user_id")
}

func (row unitRow) item() UnitListItem {
	status := unit.Status(row.StatusID)
	item := UnitListItem{
		ID:                row.ID,
		Serial:            row.Serial,
		Amount:            row.Amount,
		StatusID:          row.StatusID,
		StatusLabel:       status.Label(),
		StatusColor:       status.Color(),
		ModelID:           row.ModelID,
		ModelName:         row.ModelName,
		TypeID:            row.TypeID,
		OwnerCompanyID:    row.OwnerCompanyID,
		OwnerName:         row.OwnerName,
		StockID:           row.StockID,
		StockName:         row.StockName,
		ResponsibleUserID: row.ResponsibleUserID,
		Comment:           row.Comment,
		ParentID:          row.ParentID,
		CreatedAt:         row.CreatedAt,
	}
	if row.VendorName != nil {
		item.VendorName = *row.VendorName
	}
	if row.ResponsibleUserID != nil {
		item.ResponsibleName = person.ShortName(deref(row.RespLastName), deref(row.RespFirstName), deref(row.RespMiddleName))
	}
	return item
}

func items(rows []unitRow) []UnitListItem {
	out := make([]UnitListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.item())
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
