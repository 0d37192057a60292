package errs_test

import (
	"errors"
	"testing"

	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("unit", int64(17))

		assert.Equal(t, "unit", err.ParamName)
		assert.Equal(t, int64(17), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: unit 17", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order 42 (cause: database connection failed)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status_id")

		assert.Equal(t, "status_id", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status_id", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown status")
		err := errs.NewValueIsInvalidErrorWithCause("status_id", cause)

		assert.Equal(t, "value is invalid: status_id (cause: unknown status)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("amount", 15, 1, 10)

		assert.Equal(t, "amount", err.ParamName)
		assert.Equal(t, 15, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10, err.Max)
		assert.Equal(t, "value is out of range: amount is 15, min value is 1, max value is 10", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("serial", "ABC\n123", 0, 10)
		assert.Contains(t, err.Error(), "ABC 123")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("model_id")

	assert.Equal(t, "value is required: model_id", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("model_id", errors.New("empty payload"))
	assert.Equal(t, "value is required: model_id (cause: empty payload)", withCause.Error())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "object was modified concurrently", errs.ErrConcurrencyConflict.Error())
	assert.Equal(t, "validation failed", errs.ErrValidation.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("accumulates messages per field in insertion order", func(t *testing.T) {
		verr := errs.NewValidationError()
		verr.Add("model_id", "value is required")
		verr.Add("amount", "must not be negative")
		verr.Add("model_id", "must reference an existing row")

		require.True(t, verr.HasErrors())
		assert.Equal(t, []string{
			"model_id: value is required",
			"model_id: must reference an existing row",
			"amount: must not be negative",
		}, verr.Messages())
		assert.Equal(t, map[string][]string{
			"model_id": {"value is required", "must reference an existing row"},
			"amount":   {"must not be negative"},
		}, verr.Fields())
		assert.Equal(t, "validation failed: amount, model_id", verr.Error())
	})

	t.Run("OrNil returns nil for an empty collection", func(t *testing.T) {
		verr := errs.NewValidationError()

		require.NoError(t, verr.OrNil())
		assert.False(t, verr.HasErrors())
	})

	t.Run("Merge copies messages and works with errors.Is", func(t *testing.T) {
		first := errs.NewValidationError()
		first.Add("stock_id", "value is required")
		second := errs.NewValidationError()
		second.Add("order_id", "must reference an existing row")

		first.Merge(second)
		first.Merge(nil)

		err := first.OrNil()
		require.ErrorIs(t, err, errs.ErrValidation)

		extracted, ok := errs.AsValidationError(err)
		require.True(t, ok)
		assert.Len(t, extracted.Messages(), 2)
	})

	t.Run("AsValidationError rejects other errors", func(t *testing.T) {
		_, ok := errs.AsValidationError(errors.New("boom"))
		assert.False(t, ok)
	})
}
