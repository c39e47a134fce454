package mocks

import (
	"context"

	"onelastevent/internal/model"
	"onelastevent/internal/payment"

	"github.com/stretchr/testify/mock"
)

type MockProcessor struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func NewMockProcessor(t mockConstructorTestingT) *MockProcessor {
	m := &MockProcessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockProcessorExpecter struct {
	mock *mock.Mock
}

func (m *MockProcessor) EXPECT() *MockProcessorExpecter {
	return &MockProcessorExpecter{mock: &m.Mock}
}

func (e *MockProcessorExpecter) Name() *mock.Call {
	return e.mock.On("Name")
}

func (e *MockProcessorExpecter) CreateIntent(ctx, p interface{}) *mock.Call {
	return e.mock.On("CreateIntent", ctx, p)
}

func (e *MockProcessorExpecter) Refund(ctx, providerPaymentID interface{}) *mock.Call {
	return e.mock.On("Refund", ctx, providerPaymentID)
}

func (m *MockProcessor) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProcessor) CreateIntent(ctx context.Context, p *model.Payment) (*payment.Intent, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}

func (m *MockProcessor) Refund(ctx context.Context, providerPaymentID string) error {
	args := m.Called(ctx, providerPaymentID)
	return args.Error(0)
}
