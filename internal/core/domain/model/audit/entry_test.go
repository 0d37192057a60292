package audit_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	now := time.Now()

	t.Run("should create entry", func(t *testing.T) {
		e, err := audit.NewEntry(10, 3, "unit added", now)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Zero(t, e.ID())
		assert.Equal(t, int64(10), e.UnitID())
		assert.Equal(t, int64(3), e.ActorID())
		assert.Equal(t, now, e.CreatedAt())
	})

	t.Run("should report all missing values", func(t *testing.T) {
		e, err := audit.NewEntry(0, 0, "  ", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "unit id")
		assert.Contains(t, err.Error(), "actor id")
		assert.Contains(t, err.Error(), "action")
	})

	t.Run("restore requires id", func(t *testing.T) {
		_, err := audit.RestoreEntry(0, 10, 3, "x", now)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		e, err := audit.RestoreEntry(5, 10, 3, "x", now)
		require.NoError(t, err)
		assert.Equal(t, int64(5), e.ID())
	})
}

func TestActions(t *testing.T) {
	assert.Equal(t,
		"unit added: #12 RB951 MikroTik s/n: ABC123 amount: 1",
		audit.UnitAdded(12, "RB951", "MikroTik", "ABC123", 1))

	assert.Equal(t,
		`unit data changed: {"amount":"6","stock_id":"3"}`,
		audit.FieldsChanged(unit.Snapshot{"stock_id": "3", "amount": "6"}))

	assert.Equal(t, "unit data changed: {}", audit.DataChanged(nil))

	assert.Equal(t,
		`unit data changed: {"new_status":"Installed","previous_status":"New equipment"}`,
		audit.StatusTransition(unit.New, unit.AtWork))

	assert.Equal(t, "moved 4 to unit #31", audit.MovedOut(4, 31))
	assert.Equal(t, "unit split from #10: amount 4", audit.SplitFrom(10, 4))
}
