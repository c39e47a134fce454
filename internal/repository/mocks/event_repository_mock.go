package mocks

import (
	"context"

	"onelastevent/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockEventRepository struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func NewMockEventRepository(t mockConstructorTestingT) *MockEventRepository {
	m := &MockEventRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockEventRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockEventRepository) EXPECT() *MockEventRepositoryExpecter {
	return &MockEventRepositoryExpecter{mock: &m.Mock}
}

func (e *MockEventRepositoryExpecter) Create(ctx, event interface{}) *mock.Call {
	return e.mock.On("Create", ctx, event)
}

func (e *MockEventRepositoryExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockEventRepositoryExpecter) List(ctx, params interface{}) *mock.Call {
	return e.mock.On("List", ctx, params)
}

func (e *MockEventRepositoryExpecter) Update(ctx, id, params interface{}) *mock.Call {
	return e.mock.On("Update", ctx, id, params)
}

func (e *MockEventRepositoryExpecter) FindByIDWithLock(ctx, tx, id interface{}) *mock.Call {
	return e.mock.On("FindByIDWithLock", ctx, tx, id)
}

func (e *MockEventRepositoryExpecter) UpdateStatus(ctx, tx, id, from, to interface{}) *mock.Call {
	return e.mock.On("UpdateStatus", ctx, tx, id, from, to)
}

func (e *MockEventRepositoryExpecter) ReserveCapacity(ctx, tx, id interface{}) *mock.Call {
	return e.mock.On("ReserveCapacity", ctx, tx, id)
}

func (e *MockEventRepositoryExpecter) ReleaseCapacity(ctx, tx, id interface{}) *mock.Call {
	return e.mock.On("ReleaseCapacity", ctx, tx, id)
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, params model.ListEventsParams) ([]*model.Event, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Event), args.Int(1), args.Error(2)
}

func (m *MockEventRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to model.EventStatus) (*model.Event, error) {
	args := m.Called(ctx, tx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) ReserveCapacity(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventRepository) ReleaseCapacity(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}
