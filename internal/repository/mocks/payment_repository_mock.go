package mocks

import (
	"context"

	"onelastevent/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepository struct {
	mock.Mock
}

func NewMockPaymentRepository(t mockConstructorTestingT) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockPaymentRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockPaymentRepository) EXPECT() *MockPaymentRepositoryExpecter {
	return &MockPaymentRepositoryExpecter{mock: &m.Mock}
}

func (e *MockPaymentRepositoryExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockPaymentRepositoryExpecter) ListByUser(ctx, userID interface{}) *mock.Call {
	return e.mock.On("ListByUser", ctx, userID)
}

func (e *MockPaymentRepositoryExpecter) ListByEvent(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("ListByEvent", ctx, eventID)
}

func (e *MockPaymentRepositoryExpecter) RevenueByEvent(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("RevenueByEvent", ctx, eventID)
}

func (e *MockPaymentRepositoryExpecter) Create(ctx, tx, payment interface{}) *mock.Call {
	return e.mock.On("Create", ctx, tx, payment)
}

func (e *MockPaymentRepositoryExpecter) FindByIDWithLock(ctx, tx, id interface{}) *mock.Call {
	return e.mock.On("FindByIDWithLock", ctx, tx, id)
}

func (e *MockPaymentRepositoryExpecter) FindActiveByInscription(ctx, tx, inscriptionID interface{}) *mock.Call {
	return e.mock.On("FindActiveByInscription", ctx, tx, inscriptionID)
}

func (e *MockPaymentRepositoryExpecter) UpdateStatus(ctx, tx, id, from, to interface{}) *mock.Call {
	return e.mock.On("UpdateStatus", ctx, tx, id, from, to)
}

func (e *MockPaymentRepositoryExpecter) SetProviderInfo(ctx, tx, id, providerPaymentID, clientSecret interface{}) *mock.Call {
	return e.mock.On("SetProviderInfo", ctx, tx, id, providerPaymentID, clientSecret)
}

func (e *MockPaymentRepositoryExpecter) MarkRefunded(ctx, tx, id interface{}) *mock.Call {
	return e.mock.On("MarkRefunded", ctx, tx, id)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Payment, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) RevenueByEvent(ctx context.Context, eventID uuid.UUID) (float64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx pgx.Tx, payment *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, tx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Payment, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindActiveByInscription(ctx context.Context, tx pgx.Tx, inscriptionID uuid.UUID) (*model.Payment, error) {
	args := m.Called(ctx, tx, inscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to model.PaymentStatus) (*model.Payment, error) {
	args := m.Called(ctx, tx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SetProviderInfo(ctx context.Context, tx pgx.Tx, id uuid.UUID, providerPaymentID string, clientSecret *string) error {
	args := m.Called(ctx, tx, id, providerPaymentID, clientSecret)
	return args.Error(0)
}

func (m *MockPaymentRepository) MarkRefunded(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Payment, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}
