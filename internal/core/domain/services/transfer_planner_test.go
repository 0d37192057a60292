package services_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func batch(t *testing.T, amount int, serial string) *unit.Unit {
	t.Helper()
	u, err := unit.Restore(10, unit.Attributes{
		OwnerCompanyID: 1,
		ModelID:        2,
		StockID:        3,
		Serial:         serial,
		Amount:         amount,
		Status:         unit.New,
		CreatedBy:      9,
	}, 0)
	require.NoError(t, err)
	return u
}

func TestTransferPlanner_Plan(t *testing.T) {
	planner := services.NewTransferPlanner()

	tests := []struct {
		name       string
		unit       *unit.Unit
		req        unit.UpdateRequest
		kind       services.TransferKind
		amount     int
		violations []string
	}{
		{
			name:   "serial in request means simple move regardless of amount",
			unit:   batch(t, 10, ""),
			req:    unit.UpdateRequest{Serial: ptr("ABC123"), Amount: ptr(3)},
			kind:   services.SimpleTransfer,
			amount: 10,
		},
		{
			name:   "full amount means simple move",
			unit:   batch(t, 10, ""),
			req:    unit.UpdateRequest{Amount: ptr(10)},
			kind:   services.SimpleTransfer,
			amount: 10,
		},
		{
			name:   "partial amount with responsible is a split",
			unit:   batch(t, 10, ""),
			req:    unit.UpdateRequest{Amount: ptr(4), ResponsibleUserID: ptr(int64(7))},
			kind:   services.SplitTransfer,
			amount: 4,
		},
		{
			name:       "amount above stock is rejected",
			unit:       batch(t, 10, ""),
			req:        unit.UpdateRequest{Amount: ptr(15), ResponsibleUserID: ptr(int64(7))},
			kind:       services.SplitTransfer,
			amount:     15,
			violations: []string{services.MsgAmountExceeds},
		},
		{
			name:       "missing responsible and amount are both reported",
			unit:       batch(t, 10, ""),
			req:        unit.UpdateRequest{},
			kind:       services.SplitTransfer,
			violations: []string{services.MsgNoResponsible, services.MsgAmountMissing},
		},
		{
			name:       "all three checks accumulate",
			unit:       batch(t, 10, ""),
			req:        unit.UpdateRequest{Amount: ptr(11), ResponsibleUserID: ptr(int64(0))},
			kind:       services.SplitTransfer,
			amount:     11,
			violations: []string{services.MsgNoResponsible, services.MsgAmountExceeds},
		},
		{
			name:       "zero amount is not specified",
			unit:       batch(t, 10, ""),
			req:        unit.UpdateRequest{Amount: ptr(0), ResponsibleUserID: ptr(int64(7))},
			kind:       services.SplitTransfer,
			violations: []string{services.MsgAmountMissing},
		},
		{
			name:   "empty serial does not force a simple move",
			unit:   batch(t, 10, "SN"),
			req:    unit.UpdateRequest{Serial: ptr(""), Amount: ptr(2), ResponsibleUserID: ptr(int64(7))},
			kind:   services.SplitTransfer,
			amount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planner.Plan(tt.unit, tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.kind, plan.Kind)
			assert.Equal(t, tt.amount, plan.Amount)
			assert.Equal(t, tt.violations, plan.Violations)
			assert.Equal(t, len(tt.violations) > 0, plan.Rejected())
		})
	}
}

func TestTransferPlanner_PlanZeroValueUnit(t *testing.T) {
	_, err := services.NewTransferPlanner().Plan(&unit.Unit{}, unit.UpdateRequest{})

	require.ErrorIs(t, err, unit.ErrUnitIsNotConstructed)
}

func TestTransferPlanner_Portion(t *testing.T) {
	planner := services.NewTransferPlanner()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("copies overrides from request", func(t *testing.T) {
		plan := services.TransferPlan{Kind: services.SplitTransfer, Amount: 4}
		req := unit.UpdateRequest{
			OwnerCompanyID:    ptr(int64(5)),
			ResponsibleUserID: ptr(int64(7)),
			Comment:           ptr("to van"),
			StatusID:          ptr(int(unit.WithInstaller)),
			StockID:           ptr(int64(6)),
		}

		p, err := planner.Portion(plan, req, 3, now)

		require.NoError(t, err)
		assert.Equal(t, unit.Portion{
			Amount:            4,
			OwnerCompanyID:    5,
			ResponsibleUserID: 7,
			Comment:           "to van",
			Status:            unit.WithInstaller,
			StockID:           6,
			CreatedBy:         3,
			CreatedAt:         now,
		}, p)
	})

	t.Run("rejected plan yields no portion", func(t *testing.T) {
		plan := services.TransferPlan{Kind: services.SplitTransfer, Violations: []string{services.MsgAmountMissing}}

		_, err := planner.Portion(plan, unit.UpdateRequest{}, 3, now)

		require.ErrorIs(t, err, services.ErrTransferRejected)
	})

	t.Run("simple plan yields no portion", func(t *testing.T) {
		_, err := planner.Portion(services.TransferPlan{Kind: services.SimpleTransfer}, unit.UpdateRequest{}, 3, now)

		require.ErrorIs(t, err, services.ErrTransferRejected)
	})
}
