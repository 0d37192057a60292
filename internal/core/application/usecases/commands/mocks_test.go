package commands_test

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/comment"
	"warehouse/internal/core/domain/model/orderlink"
	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUnitRepository struct{ mock.Mock }

func (m *MockUnitRepository) Add(ctx context.Context, u *unit.Unit) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUnitRepository) Update(ctx context.Context, u *unit.Unit) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUnitRepository) Get(ctx context.Context, id int64) (*unit.Unit, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*unit.Unit)
	return u, args.Error(1)
}

func (m *MockUnitRepository) Delete(ctx context.Context, u *unit.Unit) error {
	return m.Called(ctx, u).Error(0)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, e *audit.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockAuditRepository) ListByUnit(ctx context.Context, unitID int64) ([]*audit.Entry, error) {
	args := m.Called(ctx, unitID)
	entries, _ := args.Get(0).([]*audit.Entry)
	return entries, args.Error(1)
}

func (m *MockAuditRepository) DeleteByUnit(ctx context.Context, unitID int64) (int64, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).(int64), args.Error(1)
}

// actions returns the action texts passed to Add, in call order.
func (m *MockAuditRepository) actions() []string {
	var out []string
	for _, call := range m.Calls {
		if call.Method == "Add" {
			out = append(out, call.Arguments.Get(1).(*audit.Entry).Action())
		}
	}
	return out
}

type MockCommentRepository struct{ mock.Mock }

func (m *MockCommentRepository) Add(ctx context.Context, c *comment.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCommentRepository) ListByUnit(ctx context.Context, unitID int64) ([]*comment.Comment, error) {
	args := m.Called(ctx, unitID)
	comments, _ := args.Get(0).([]*comment.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentRepository) DeleteByUnit(ctx context.Context, unitID int64) (int64, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderLinkRepository struct{ mock.Mock }

func (m *MockOrderLinkRepository) Add(ctx context.Context, l *orderlink.Link) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockOrderLinkRepository) GetByUnit(ctx context.Context, unitID int64) (*orderlink.Link, error) {
	args := m.Called(ctx, unitID)
	l, _ := args.Get(0).(*orderlink.Link)
	return l, args.Error(1)
}

func (m *MockOrderLinkRepository) DeleteByUnit(ctx context.Context, unitID int64) (int64, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).(int64), args.Error(1)
}

type MockReferenceRepository struct{ mock.Mock }

func (m *MockReferenceRepository) Exists(ctx context.Context, ref ports.Reference, id int64) (bool, error) {
	args := m.Called(ctx, ref, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceRepository) Model(ctx context.Context, id int64) (ports.ModelInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.ModelInfo), args.Error(1)
}

func (m *MockReferenceRepository) UserShortName(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) UnitRepository() ports.UnitRepository {
	return m.Called().Get(0).(ports.UnitRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	return m.Called().Get(0).(ports.AuditRepository)
}

func (m *MockUoW) CommentRepository() ports.CommentRepository {
	return m.Called().Get(0).(ports.CommentRepository)
}

func (m *MockUoW) OrderLinkRepository() ports.OrderLinkRepository {
	return m.Called().Get(0).(ports.OrderLinkRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

// fixture wires one set of repository mocks behind a unit of work that hands
// them out any number of times.
type fixture struct {
	units    *MockUnitRepository
	audits   *MockAuditRepository
	comments *MockCommentRepository
	links    *MockOrderLinkRepository
	refs     *MockReferenceRepository
	uow      *MockUoW
	factory  *MockUoWFactory
}

func newFixture() *fixture {
	f := &fixture{
		units:    new(MockUnitRepository),
		audits:   new(MockAuditRepository),
		comments: new(MockCommentRepository),
		links:    new(MockOrderLinkRepository),
		refs:     new(MockReferenceRepository),
		uow:      new(MockUoW),
		factory:  new(MockUoWFactory),
	}
	f.uow.On("UnitRepository").Return(f.units).Maybe()
	f.uow.On("AuditRepository").Return(f.audits).Maybe()
	f.uow.On("CommentRepository").Return(f.comments).Maybe()
	f.uow.On("OrderLinkRepository").Return(f.links).Maybe()
	f.factory.On("Create").Return(f.uow)
	return f
}

// allReferencesExist makes every reference lookup succeed.
func (f *fixture) allReferencesExist() {
	f.refs.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Maybe()
}

func (f *fixture) acceptAudit() {
	f.audits.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Maybe()
}

func ptr[T any](v T) *T { return &v }

func storedUnit(id int64, amount int, serial string) *unit.Unit {
	u, err := unit.Restore(id, unit.Attributes{
		OwnerCompanyID:    1,
		ModelID:           2,
		StockID:           3,
		Serial:            serial,
		Amount:            amount,
		Status:            unit.New,
		ResponsibleUserID: ptr(int64(5)),
		CreatedBy:         9,
	}, 1)
	if err != nil {
		panic(err)
	}
	return u
}

// markStored simulates the id assignment of UnitRepository.Add.
func markStored(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*unit.Unit).MarkStored(id, 0)
	}
}
