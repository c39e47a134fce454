package mocks

import (
	"context"

	"onelastevent/internal/model"
	"onelastevent/internal/queue"

	"github.com/stretchr/testify/mock"
)

type MockNotificationQueue struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func NewMockNotificationQueue(t mockConstructorTestingT) *MockNotificationQueue {
	m := &MockNotificationQueue{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockNotificationQueueExpecter struct {
	mock *mock.Mock
}

func (m *MockNotificationQueue) EXPECT() *MockNotificationQueueExpecter {
	return &MockNotificationQueueExpecter{mock: &m.Mock}
}

func (e *MockNotificationQueueExpecter) PublishNotification(ctx, notification interface{}) *mock.Call {
	return e.mock.On("PublishNotification", ctx, notification)
}

func (e *MockNotificationQueueExpecter) SubscribeNotifications(ctx interface{}) *mock.Call {
	return e.mock.On("SubscribeNotifications", ctx)
}

func (m *MockNotificationQueue) PublishNotification(ctx context.Context, notification *model.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationQueue) SubscribeNotifications(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
