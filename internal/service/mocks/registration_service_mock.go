package mocks

import (
	"context"

	"onelastevent/internal/model"
	"onelastevent/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRegistrationService struct {
	mock.Mock
}

func NewMockRegistrationService(t mockConstructorTestingT) *MockRegistrationService {
	m := &MockRegistrationService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockRegistrationServiceExpecter struct {
	mock *mock.Mock
}

func (m *MockRegistrationService) EXPECT() *MockRegistrationServiceExpecter {
	return &MockRegistrationServiceExpecter{mock: &m.Mock}
}

func (e *MockRegistrationServiceExpecter) Register(ctx, requester, eventID interface{}) *mock.Call {
	return e.mock.On("Register", ctx, requester, eventID)
}

func (e *MockRegistrationServiceExpecter) Cancel(ctx, requester, inscriptionID interface{}) *mock.Call {
	return e.mock.On("Cancel", ctx, requester, inscriptionID)
}

func (m *MockRegistrationService) Register(ctx context.Context, requester model.Requester, eventID uuid.UUID) (*service.RegistrationResult, error) {
	args := m.Called(ctx, requester, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RegistrationResult), args.Error(1)
}

func (m *MockRegistrationService) Cancel(ctx context.Context, requester model.Requester, inscriptionID uuid.UUID) (*model.Inscription, error) {
	args := m.Called(ctx, requester, inscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inscription), args.Error(1)
}
