package mocks

import (
	"context"

	"onelastevent/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockPaymentService struct {
	mock.Mock
}

func NewMockPaymentService(t mockConstructorTestingT) *MockPaymentService {
	m := &MockPaymentService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockPaymentServiceExpecter struct {
	mock *mock.Mock
}

func (m *MockPaymentService) EXPECT() *MockPaymentServiceExpecter {
	return &MockPaymentServiceExpecter{mock: &m.Mock}
}

func (e *MockPaymentServiceExpecter) Initialize(ctx, userID, eventID interface{}) *mock.Call {
	return e.mock.On("Initialize", ctx, userID, eventID)
}

func (e *MockPaymentServiceExpecter) CompleteMock(ctx, requester, paymentID, simulateFailure interface{}) *mock.Call {
	return e.mock.On("CompleteMock", ctx, requester, paymentID, simulateFailure)
}

func (e *MockPaymentServiceExpecter) HandleProviderCallback(ctx, event interface{}) *mock.Call {
	return e.mock.On("HandleProviderCallback", ctx, event)
}

func (e *MockPaymentServiceExpecter) Refund(ctx, requester, paymentID interface{}) *mock.Call {
	return e.mock.On("Refund", ctx, requester, paymentID)
}

func (e *MockPaymentServiceExpecter) GetStatus(ctx, requester, paymentID interface{}) *mock.Call {
	return e.mock.On("GetStatus", ctx, requester, paymentID)
}

func (e *MockPaymentServiceExpecter) ListByUser(ctx, requester, userID interface{}) *mock.Call {
	return e.mock.On("ListByUser", ctx, requester, userID)
}

func (e *MockPaymentServiceExpecter) ListByEvent(ctx, requester, eventID interface{}) *mock.Call {
	return e.mock.On("ListByEvent", ctx, requester, eventID)
}

func (e *MockPaymentServiceExpecter) EventRevenue(ctx, requester, eventID interface{}) *mock.Call {
	return e.mock.On("EventRevenue", ctx, requester, eventID)
}

func (m *MockPaymentService) Initialize(ctx context.Context, userID, eventID uuid.UUID) (*model.PaymentInit, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentInit), args.Error(1)
}

func (m *MockPaymentService) CompleteMock(ctx context.Context, requester model.Requester, paymentID uuid.UUID, simulateFailure bool) (*model.Payment, error) {
	args := m.Called(ctx, requester, paymentID, simulateFailure)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) HandleProviderCallback(ctx context.Context, event *model.ProviderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPaymentService) Refund(ctx context.Context, requester model.Requester, paymentID uuid.UUID) (*model.Payment, error) {
	args := m.Called(ctx, requester, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) GetStatus(ctx context.Context, requester model.Requester, paymentID uuid.UUID) (*model.Payment, error) {
	args := m.Called(ctx, requester, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) ListByUser(ctx context.Context, requester model.Requester, userID uuid.UUID) ([]*model.Payment, error) {
	args := m.Called(ctx, requester, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payment), args.Error(1)
}

func (m *MockPaymentService) ListByEvent(ctx context.Context, requester model.Requester, eventID uuid.UUID) ([]*model.Payment, error) {
	args := m.Called(ctx, requester, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payment), args.Error(1)
}

func (m *MockPaymentService) EventRevenue(ctx context.Context, requester model.Requester, eventID uuid.UUID) (float64, error) {
	args := m.Called(ctx, requester, eventID)
	return args.Get(0).(float64), args.Error(1)
}
