package mocks

import (
	"context"

	"onelastevent/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func NewMockNotifier(t mockConstructorTestingT) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockNotifierExpecter struct {
	mock *mock.Mock
}

func (m *MockNotifier) EXPECT() *MockNotifierExpecter {
	return &MockNotifierExpecter{mock: &m.Mock}
}

func (e *MockNotifierExpecter) RegistrationConfirmed(ctx, userID, event interface{}) *mock.Call {
	return e.mock.On("RegistrationConfirmed", ctx, userID, event)
}

func (e *MockNotifierExpecter) PaymentReceived(ctx, userID, event interface{}) *mock.Call {
	return e.mock.On("PaymentReceived", ctx, userID, event)
}

func (e *MockNotifierExpecter) EventCancelled(ctx, userID, event interface{}) *mock.Call {
	return e.mock.On("EventCancelled", ctx, userID, event)
}

func (m *MockNotifier) RegistrationConfirmed(ctx context.Context, userID uuid.UUID, event *model.Event) {
	m.Called(ctx, userID, event)
}

func (m *MockNotifier) PaymentReceived(ctx context.Context, userID uuid.UUID, event *model.Event) {
	m.Called(ctx, userID, event)
}

func (m *MockNotifier) EventCancelled(ctx context.Context, userID uuid.UUID, event *model.Event) {
	m.Called(ctx, userID, event)
}
