package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockWebhookDedup struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func NewMockWebhookDedup(t mockConstructorTestingT) *MockWebhookDedup {
	m := &MockWebhookDedup{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockWebhookDedupExpecter struct {
	mock *mock.Mock
}

func (m *MockWebhookDedup) EXPECT() *MockWebhookDedupExpecter {
	return &MockWebhookDedupExpecter{mock: &m.Mock}
}

func (e *MockWebhookDedupExpecter) MarkProcessed(ctx, deliveryID interface{}) *mock.Call {
	return e.mock.On("MarkProcessed", ctx, deliveryID)
}

func (e *MockWebhookDedupExpecter) Forget(ctx, deliveryID interface{}) *mock.Call {
	return e.mock.On("Forget", ctx, deliveryID)
}

func (m *MockWebhookDedup) MarkProcessed(ctx context.Context, deliveryID string) (bool, error) {
	args := m.Called(ctx, deliveryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebhookDedup) Forget(ctx context.Context, deliveryID string) error {
	args := m.Called(ctx, deliveryID)
	return args.Error(0)
}
