package commands_test

import (
	"context"
	"errors"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusCommenter struct{ mock.Mock }

func (m *MockStatusCommenter) Handle(ctx context.Context, cmd commands.RecordStatusChangeCommand) (commands.Result, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.Result), args.Error(1)
}

func TestChangeUnitStatusCommandHandler_Handle(t *testing.T) {
	t.Run("stores status, audits and comments", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.allReferencesExist()
		f.acceptAudit()
		commenter := new(MockStatusCommenter)
		stored := storedUnit(10, 1, "SN")
		f.units.On("Get", mock.Anything, int64(10)).Return(stored, nil).Once()
		f.units.On("Update", mock.Anything, stored).Return(nil).Once()
		commenter.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.RecordStatusChangeCommand) bool {
			return c.From() == unit.New && c.To() == unit.WithInstaller && c.ResponsibleID() == 7
		})).Return(commands.NewResult(), nil).Once()

		cmd, err := commands.NewChangeUnitStatusCommand(10, unit.WithInstaller, ptr(int64(7)), 3)
		require.NoError(t, err)

		h := commands.NewChangeUnitStatusCommandHandler(f.factory, f.refs, commenter, logger.Discard())
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Equal(t, unit.WithInstaller, stored.Status())
		assert.Equal(t, int64(7), *stored.ResponsibleUserID())
		assert.Equal(t,
			[]string{`unit data changed: {"new_status":"With installer","previous_status":"New equipment"}`},
			f.audits.actions())
		commenter.AssertExpectations(t)
	})

	t.Run("comment failure fails the result", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.allReferencesExist()
		f.acceptAudit()
		commenter := new(MockStatusCommenter)
		stored := storedUnit(10, 1, "SN")
		f.units.On("Get", mock.Anything, int64(10)).Return(stored, nil).Once()
		f.units.On("Update", mock.Anything, stored).Return(nil).Once()
		failed := commands.NewResult()
		failed.Fail(commands.MsgCommentFailed)
		commenter.On("Handle", mock.Anything, mock.Anything).Return(failed, nil).Once()

		cmd, _ := commands.NewChangeUnitStatusCommand(10, unit.Defect, nil, 3)
		h := commands.NewChangeUnitStatusCommandHandler(f.factory, f.refs, commenter, logger.Discard())
		result, _ := h.Handle(ctx, cmd)

		assert.Equal(t, []string{commands.MsgCommentFailed}, result.Messages)
		assert.Equal(t, int64(5), *stored.ResponsibleUserID(), "responsible unchanged")
	})

	t.Run("update failure skips audit and comment", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.allReferencesExist()
		commenter := new(MockStatusCommenter)
		stored := storedUnit(10, 1, "SN")
		f.units.On("Get", mock.Anything, int64(10)).Return(stored, nil).Once()
		f.units.On("Update", mock.Anything, stored).Return(errors.New("db down")).Once()

		cmd, _ := commands.NewChangeUnitStatusCommand(10, unit.Defect, nil, 3)
		h := commands.NewChangeUnitStatusCommandHandler(f.factory, f.refs, commenter, logger.Discard())
		result, _ := h.Handle(ctx, cmd)

		assert.Equal(t, []string{commands.MsgStatusNotChanged}, result.Messages)
		f.audits.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		commenter.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestNewChangeUnitStatusCommand(t *testing.T) {
	_, err := commands.NewChangeUnitStatusCommand(10, unit.Status(99), nil, 3)
	require.Error(t, err)

	cmd, err := commands.NewChangeUnitStatusCommand(10, unit.AtWork, nil, 3)
	require.NoError(t, err)
	assert.Nil(t, cmd.ResponsibleID())
}
