package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whereSQL(t *testing.T, q ListUnitsQuery) (string, []any, bool) {
	t.Helper()
	where, numeric := q.conditions()
	sql, args, err := where.ToSql()
	require.NoError(t, err)
	return sql, args, numeric
}

func TestListUnitsQuery_NoFiltersHidesUnitsAtWork(t *testing.T) {
	sql, args, numeric := whereSQL(t, NewListUnitsQuery(nil, "", false, 1))

	assert.Equal(t, "(u.status_id <> ?)", sql)
	assert.Equal(t, []any{5}, args)
	assert.False(t, numeric)
}

func TestListUnitsQuery_EmptyValuesStillCountAsFiltered(t *testing.T) {
	sql, args, _ := whereSQL(t, NewListUnitsQuery([]Filter{{Field: "serial", Value: "  "}}, "", false, 1))

	assert.Equal(t, "(1=1)", sql)
	assert.Empty(t, args)
}

func TestListUnitsQuery_Conditions(t *testing.T) {
	tests := []struct {
		name    string
		filters []Filter
		sql     string
		args    []any
		numeric bool
	}{
		{
			name:    "serial substring",
			filters: []Filter{{"serial", "ab_1"}},
			sql:     "(u.serial ILIKE ?)",
			args:    []any{`%ab\_1%`},
		},
		{
			name:    "responsible zero means nobody",
			filters: []Filter{{"responsible_id", "0"}},
			sql:     "(u.responsible_user_id IS NULL)",
		},
		{
			name:    "filters keep their order",
			filters: []Filter{{"company_id", "3"}, {"model", "7"}, {"status_id", "2"}, {"responsible_id", "9"}},
			sql:     "(u.owner_company_id = ? AND u.model_id = ? AND u.status_id = ? AND u.responsible_user_id = ?)",
			args:    []any{int64(3), int64(7), int64(2), int64(9)},
		},
		{
			name:    "single devices",
			filters: []Filter{{"type", "1"}},
			sql:     "(u.amount = ? AND u.serial <> ?)",
			args:    []any{1, ""},
		},
		{
			name:    "batches",
			filters: []Filter{{"type", "2"}},
			sql:     "(u.amount > ?)",
			args:    []any{1},
			numeric: true,
		},
		{
			name:    "unknown fields and non numeric values are ignored",
			filters: []Filter{{"colour", "red"}, {"model", "abc"}, {"type", "3"}, {"status_id", "2"}},
			sql:     "(u.status_id = ?)",
			args:    []any{int64(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, numeric := whereSQL(t, NewListUnitsQuery(tt.filters, "", false, 1))

			assert.Equal(t, tt.sql, sql)
			if tt.args == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.args, args)
			}
			assert.Equal(t, tt.numeric, numeric)
		})
	}
}

func TestListUnitsQuery_OrderBy(t *testing.T) {
	assert.Equal(t, []string{"u.id ASC"}, NewListUnitsQuery(nil, "", false, 1).orderBy(false))
	assert.Equal(t, []string{"u.id ASC"}, NewListUnitsQuery(nil, "u.id; DROP TABLE units", false, 1).orderBy(false))
	assert.Equal(t, []string{"m.name DESC", "u.id DESC"}, NewListUnitsQuery(nil, "model", true, 1).orderBy(false))

	batch := NewListUnitsQuery(nil, "amount", true, 1).orderBy(true)
	assert.Contains(t, batch[0], "regexp_replace(u.serial")
}

func TestListUnitsQuery_PageIsClamped(t *testing.T) {
	assert.Equal(t, 1, NewListUnitsQuery(nil, "", false, -3).Page())
	assert.Equal(t, 4, NewListUnitsQuery(nil, "", false, 4).Page())
}

func TestListUnitsQuery_ZeroValueIsRejected(t *testing.T) {
	require.ErrorIs(t, ListUnitsQuery{}.Validate(), ErrListUnitsQueryIsNotConstructed)
}
