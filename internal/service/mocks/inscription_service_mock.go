package mocks

import (
	"context"

	"onelastevent/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockInscriptionService struct {
	mock.Mock
}

func NewMockInscriptionService(t mockConstructorTestingT) *MockInscriptionService {
	m := &MockInscriptionService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockInscriptionServiceExpecter struct {
	mock *mock.Mock
}

func (m *MockInscriptionService) EXPECT() *MockInscriptionServiceExpecter {
	return &MockInscriptionServiceExpecter{mock: &m.Mock}
}

func (e *MockInscriptionServiceExpecter) Register(ctx, userID, eventID interface{}) *mock.Call {
	return e.mock.On("Register", ctx, userID, eventID)
}

func (e *MockInscriptionServiceExpecter) Cancel(ctx, requester, id interface{}) *mock.Call {
	return e.mock.On("Cancel", ctx, requester, id)
}

func (e *MockInscriptionServiceExpecter) GetByID(ctx, requester, id interface{}) *mock.Call {
	return e.mock.On("GetByID", ctx, requester, id)
}

func (e *MockInscriptionServiceExpecter) ListByUser(ctx, requester, userID, params interface{}) *mock.Call {
	return e.mock.On("ListByUser", ctx, requester, userID, params)
}

func (e *MockInscriptionServiceExpecter) ListByEvent(ctx, requester, eventID interface{}) *mock.Call {
	return e.mock.On("ListByEvent", ctx, requester, eventID)
}

func (m *MockInscriptionService) Register(ctx context.Context, userID, eventID uuid.UUID) (*model.Inscription, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inscription), args.Error(1)
}

func (m *MockInscriptionService) Cancel(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Inscription, error) {
	args := m.Called(ctx, requester, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inscription), args.Error(1)
}

func (m *MockInscriptionService) GetByID(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Inscription, error) {
	args := m.Called(ctx, requester, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inscription), args.Error(1)
}

func (m *MockInscriptionService) ListByUser(ctx context.Context, requester model.Requester, userID uuid.UUID, params model.ListInscriptionsParams) ([]*model.Inscription, int, error) {
	args := m.Called(ctx, requester, userID, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Inscription), args.Int(1), args.Error(2)
}

func (m *MockInscriptionService) ListByEvent(ctx context.Context, requester model.Requester, eventID uuid.UUID) ([]*model.Inscription, error) {
	args := m.Called(ctx, requester, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Inscription), args.Error(1)
}
