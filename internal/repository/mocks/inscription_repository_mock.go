package mocks

import (
	"context"

	"onelastevent/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockInscriptionRepository struct {
	mock.Mock
}

func NewMockInscriptionRepository(t mockConstructorTestingT) *MockInscriptionRepository {
	m := &MockInscriptionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockInscriptionRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockInscriptionRepository) EXPECT() *MockInscriptionRepositoryExpecter {
	return &MockInscriptionRepositoryExpecter{mock: &m.Mock}
}

func (e *MockInscriptionRepositoryExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockInscriptionRepositoryExpecter) ListByUser(ctx, userID, params interface{}) *mock.Call {
	return e.mock.On("ListByUser", ctx, userID, params)
}

func (e *MockInscriptionRepositoryExpecter) ListByEvent(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("ListByEvent", ctx, eventID)
}

func (e *MockInscriptionRepositoryExpecter) Create(ctx, tx, inscription interface{}) *mock.Call {
	return e.mock.On("Create", ctx, tx, inscription)
}

func (e *MockInscriptionRepositoryExpecter) FindByEventAndUser(ctx, tx, eventID, userID interface{}) *mock.Call {
	return e.mock.On("FindByEventAndUser", ctx, tx, eventID, userID)
}

func (e *MockInscriptionRepositoryExpecter) FindByIDWithLock(ctx, tx, id interface{}) *mock.Call {
	return e.mock.On("FindByIDWithLock", ctx, tx, id)
}

func (e *MockInscriptionRepositoryExpecter) UpdateStatus(ctx, tx, id, status interface{}) *mock.Call {
	return e.mock.On("UpdateStatus", ctx, tx, id, status)
}

func (e *MockInscriptionRepositoryExpecter) CancelAllActiveByEvent(ctx, tx, eventID interface{}) *mock.Call {
	return e.mock.On("CancelAllActiveByEvent", ctx, tx, eventID)
}

func (m *MockInscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Inscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inscription), args.Error(1)
}

func (m *MockInscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID, params model.ListInscriptionsParams) ([]*model.Inscription, int, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Inscription), args.Int(1), args.Error(2)
}

func (m *MockInscriptionRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Inscription, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Inscription), args.Error(1)
}

func (m *MockInscriptionRepository) Create(ctx context.Context, tx pgx.Tx, inscription *model.Inscription) (*model.Inscription, error) {
	args := m.Called(ctx, tx, inscription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inscription), args.Error(1)
}

func (m *MockInscriptionRepository) FindByEventAndUser(ctx context.Context, tx pgx.Tx, eventID, userID uuid.UUID) (*model.Inscription, error) {
	args := m.Called(ctx, tx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inscription), args.Error(1)
}

func (m *MockInscriptionRepository) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Inscription, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inscription), args.Error(1)
}

func (m *MockInscriptionRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.InscriptionStatus) (*model.Inscription, error) {
	args := m.Called(ctx, tx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inscription), args.Error(1)
}

func (m *MockInscriptionRepository) CancelAllActiveByEvent(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) ([]*model.Inscription, error) {
	args := m.Called(ctx, tx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Inscription), args.Error(1)
}
