package unit_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func storedBatch(t *testing.T, amount int) *unit.Unit {
	t.Helper()
	u, err := unit.Restore(10, unit.Attributes{
		OwnerCompanyID:    1,
		ModelID:           2,
		StockID:           3,
		Amount:            amount,
		Status:            unit.New,
		ResponsibleUserID: ptr(int64(5)),
		Comment:           "pallet 4",
		CreatedBy:         9,
		CreatedAt:         time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}, 2)
	require.NoError(t, err)
	return u
}

func TestNewUnit(t *testing.T) {
	u := unit.NewUnit()

	require.NoError(t, u.Validate())
	assert.True(t, u.IsNew())
	assert.Equal(t, unit.New, u.Status())
	assert.Zero(t, u.Amount())
	assert.Zero(t, u.Version())
}

func TestRestore(t *testing.T) {
	t.Run("should restore stored unit", func(t *testing.T) {
		u := storedBatch(t, 10)

		require.NoError(t, u.Validate())
		assert.Equal(t, int64(10), u.ID())
		assert.Equal(t, 2, u.Version())
		assert.Equal(t, int64(5), *u.ResponsibleUserID())
		assert.False(t, u.IsNew())
	})

	t.Run("should reject invalid stored state", func(t *testing.T) {
		u, err := unit.Restore(0, unit.Attributes{Amount: -1, Status: unit.Status(42)}, 0)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("accessors return copies of references", func(t *testing.T) {
		u := storedBatch(t, 10)

		*u.ResponsibleUserID() = 99

		assert.Equal(t, int64(5), *u.ResponsibleUserID())
	})
}

func TestZeroValueUnit(t *testing.T) {
	var u unit.Unit

	require.ErrorIs(t, u.Validate(), unit.ErrUnitIsNotConstructed)
	require.ErrorIs(t, u.Withdraw(1), unit.ErrUnitIsNotConstructed)
}

func TestUnit_Apply(t *testing.T) {
	t.Run("should change only present fields", func(t *testing.T) {
		u := storedBatch(t, 10)

		u.Apply(unit.UpdateRequest{StockID: ptr(int64(8)), Serial: ptr("SN-1")})

		assert.Equal(t, int64(8), u.StockID())
		assert.Equal(t, "SN-1", u.Serial())
		assert.Equal(t, int64(1), u.OwnerCompanyID())
		assert.Equal(t, "pallet 4", u.Comment())
	})

	t.Run("zero clears nullable references", func(t *testing.T) {
		u := storedBatch(t, 10)

		u.Apply(unit.UpdateRequest{ResponsibleUserID: ptr(int64(0)), ParentID: ptr(int64(0))})

		assert.Nil(t, u.ResponsibleUserID())
		assert.Nil(t, u.ParentID())
	})
}

func TestUnit_Check(t *testing.T) {
	t.Run("should accumulate every violation", func(t *testing.T) {
		u := unit.NewUnit()
		u.Apply(unit.UpdateRequest{Amount: ptr(-1), StatusID: ptr(0), PinCode: ptr(string(make([]byte, 256)))})

		verr := u.Check()

		require.True(t, verr.HasErrors())
		fields := verr.Fields()
		for _, f := range []string{"owner_company_id", "model_id", "stock_id", "created_by", "status_id", "amount", "pin_code"} {
			assert.Contains(t, fields, f)
		}
	})

	t.Run("should pass for complete unit", func(t *testing.T) {
		u := unit.NewUnit()
		u.Apply(unit.UpdateRequest{
			OwnerCompanyID: ptr(int64(1)),
			ModelID:        ptr(int64(2)),
			StockID:        ptr(int64(3)),
			Amount:         ptr(4),
		})
		u.Stamp(9, time.Now())

		assert.False(t, u.Check().HasErrors())
	})

	t.Run("should report unknown status", func(t *testing.T) {
		u := storedBatch(t, 1)
		u.Apply(unit.UpdateRequest{StatusID: ptr(17)})

		assert.Equal(t, []string{"unknown status"}, u.Check().Fields()["status_id"])
	})
}

func TestUnit_Withdraw(t *testing.T) {
	t.Run("should decrement amount", func(t *testing.T) {
		u := storedBatch(t, 10)

		require.NoError(t, u.Withdraw(4))

		assert.Equal(t, 6, u.Amount())
	})

	t.Run("should allow withdrawing everything", func(t *testing.T) {
		u := storedBatch(t, 10)

		require.NoError(t, u.Withdraw(10))

		assert.Zero(t, u.Amount())
	})

	t.Run("should reject more than available", func(t *testing.T) {
		u := storedBatch(t, 10)

		err := u.Withdraw(15)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 10, u.Amount())
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		u := storedBatch(t, 10)

		require.Error(t, u.Withdraw(0))
		require.Error(t, u.Withdraw(-3))
	})
}

func TestUnit_Split(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("child copies source and applies portion", func(t *testing.T) {
		u := storedBatch(t, 10)

		child, err := u.Split(unit.Portion{
			Amount:            4,
			ResponsibleUserID: 7,
			CreatedBy:         3,
			CreatedAt:         now,
		})

		require.NoError(t, err)
		assert.True(t, child.IsNew())
		assert.Equal(t, 4, child.Amount())
		assert.Equal(t, int64(7), *child.ResponsibleUserID())
		assert.Equal(t, int64(10), *child.ParentID())
		assert.Equal(t, u.OwnerCompanyID(), child.OwnerCompanyID())
		assert.Equal(t, u.StockID(), child.StockID())
		assert.Equal(t, unit.New, child.Status())
		assert.Empty(t, child.Comment())
		assert.Equal(t, int64(3), child.CreatedBy())
		assert.Equal(t, now, child.CreatedAt())
		assert.Equal(t, 10, u.Amount(), "split does not touch the source")
	})

	t.Run("portion overrides owner status and stock", func(t *testing.T) {
		u := storedBatch(t, 10)

		child, err := u.Split(unit.Portion{
			Amount:         2,
			OwnerCompanyID: 44,
			Status:         unit.WithInstaller,
			StockID:        12,
			Comment:        "for site 3",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(44), child.OwnerCompanyID())
		assert.Equal(t, unit.WithInstaller, child.Status())
		assert.Equal(t, int64(12), child.StockID())
		assert.Equal(t, "for site 3", child.Comment())
	})

	t.Run("unsaved unit cannot be split", func(t *testing.T) {
		_, err := unit.NewUnit().Split(unit.Portion{Amount: 1})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUnit_ChangeStatus(t *testing.T) {
	u := storedBatch(t, 1)

	require.NoError(t, u.ChangeStatus(unit.AtWork))
	assert.Equal(t, unit.AtWork, u.Status())

	require.Error(t, u.ChangeStatus(unit.Unknown))
	assert.Equal(t, unit.AtWork, u.Status())
}

func TestUnit_MarkStored(t *testing.T) {
	u := unit.NewUnit()

	u.MarkStored(31, 1)

	assert.Equal(t, int64(31), u.ID())
	assert.Equal(t, 1, u.Version())
	assert.False(t, u.IsNew())
}
