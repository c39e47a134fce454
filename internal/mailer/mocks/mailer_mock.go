package mocks

import (
	"context"

	"onelastevent/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func NewMockMailer(t mockConstructorTestingT) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockMailerExpecter struct {
	mock *mock.Mock
}

func (m *MockMailer) EXPECT() *MockMailerExpecter {
	return &MockMailerExpecter{mock: &m.Mock}
}

func (e *MockMailerExpecter) Send(ctx, recipientEmail, notification interface{}) *mock.Call {
	return e.mock.On("Send", ctx, recipientEmail, notification)
}

func (m *MockMailer) Send(ctx context.Context, recipientEmail string, notification *model.Notification) error {
	args := m.Called(ctx, recipientEmail, notification)
	return args.Error(0)
}
