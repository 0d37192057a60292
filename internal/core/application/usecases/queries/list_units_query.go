package queries

import (
	"errors"
	"strconv"
	"strings"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
)

var ErrListUnitsQueryIsNotConstructed = errors.New(
	"ListUnitsQuery must be created via NewListUnitsQuery constructor",
)

// Filter is one (field, value) pair of a unit listing.
//
// Known fields:
//   - serial: case-insensitive substring
//   - model: model id
//   - status_id
//   - responsible_id: "0" selects units without a responsible user
//   - company_id: owner company id
//   - type: "1" single serialized devices, "2" batches ordered by serial
//
// Empty values, unknown fields and non-numeric values for numeric fields are
// ignored.
type Filter struct {
	Field string
	Value string
}

const (
	TypeSingle = 1
	TypeBatch  = 2
)

const DefaultPerPage = 50

// MaxExportRows caps ListUnitsQueryHandler.All.
const MaxExportRows = 10000

var sortColumns = map[string]string{
	"id":         "u.id",
	"serial":     "u.serial",
	"amount":     "u.amount",
	"status_id":  "u.status_id",
	"created_at": "u.created_at",
	"model":      "m.name",
}

// ListUnitsQuery selects a page of units.
//
// Without any filter at all, units at work are left out. A filter list with
// only empty values counts as filtered and shows every unit.
type ListUnitsQuery struct {
	filters []Filter
	sort    string
	desc    bool
	page    int

	guard guard.ConstructorGuard
}

// NewListUnitsQuery builds the query. Sort fields outside the whitelist fall
// back to id; pages are 1-based and clamped to 1.
func NewListUnitsQuery(filters []Filter, sort string, desc bool, page int) ListUnitsQuery {
	if _, ok := sortColumns[sort]; !ok {
		sort = "id"
	}
	if page < 1 {
		page = 1
	}
	return ListUnitsQuery{
		filters: append([]Filter(nil), filters...),
		sort:    sort,
		desc:    desc,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}
}

func (q ListUnitsQuery) Validate() error {
	return q.guard.Validate(ErrListUnitsQueryIsNotConstructed)
}

func (q ListUnitsQuery) Page() int { return q.page }

// conditions turns the filters into WHERE clauses, in filter order.
func (q ListUnitsQuery) conditions() (sq.And, bool) {
	if len(q.filters) == 0 {
		return sq.And{sq.NotEq{"u.status_id": int(unit.AtWork)}}, false
	}

	where := sq.And{}
	numericSerial := false
	for _, f := range q.filters {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}

		switch f.Field {
		case "serial":
			where = append(where, sq.ILike{"u.serial": "%" + escapeLike(value) + "%"})
		case "model":
			if id, ok := parseInt(value); ok {
				where = append(where, sq.Eq{"u.model_id": id})
			}
		case "status_id":
			if id, ok := parseInt(value); ok {
				where = append(where, sq.Eq{"u.status_id": id})
			}
		case "responsible_id":
			if id, ok := parseInt(value); ok {
				if id == 0 {
					where = append(where, sq.Eq{"u.responsible_user_id": nil})
				} else {
					where = append(where, sq.Eq{"u.responsible_user_id": id})
				}
			}
		case "company_id":
			if id, ok := parseInt(value); ok {
				where = append(where, sq.Eq{"u.owner_company_id": id})
			}
		case "type", "warehouse_type":
			kind, ok := parseInt(value)
			switch {
			case !ok:
			case kind == TypeSingle:
				where = append(where, sq.Eq{"u.amount": 1}, sq.NotEq{"u.serial": ""})
			case kind == TypeBatch:
				where = append(where, sq.Gt{"u.amount": 1})
				numericSerial = true
			}
		}
	}
	return where, numericSerial
}

// orderBy returns the ORDER BY terms. A batch type filter replaces the
// requested sort with a numeric ordering on serial.
func (q ListUnitsQuery) orderBy(numericSerial bool) []string {
	if numericSerial {
		return []string{`NULLIF(regexp_replace(u.serial, '\D', '', 'g'), '')::numeric NULLS LAST`, "u.id"}
	}
	dir := "ASC"
	if q.desc {
		dir = "DESC"
	}
	terms := []string{sortColumns[q.sort] + " " + dir}
	if q.sort != "id" {
		terms = append(terms, "u.id "+dir)
	}
	return terms
}

// ListUnitsResponse is one page of units with paging totals.
type ListUnitsResponse struct {
	Items   []UnitListItem
	Total   int64
	Page    int
	PerPage int
	Pages   int
}

func parseInt(value string) (int64, bool) {
	n, err := strconv.ParseInt(value, 10, 64)
	return n, err == nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
