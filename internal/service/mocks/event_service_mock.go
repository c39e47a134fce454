package mocks

import (
	"context"

	"onelastevent/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockEventService struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func NewMockEventService(t mockConstructorTestingT) *MockEventService {
	m := &MockEventService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockEventServiceExpecter struct {
	mock *mock.Mock
}

func (m *MockEventService) EXPECT() *MockEventServiceExpecter {
	return &MockEventServiceExpecter{mock: &m.Mock}
}

func (e *MockEventServiceExpecter) Create(ctx, requester, req interface{}) *mock.Call {
	return e.mock.On("Create", ctx, requester, req)
}

func (e *MockEventServiceExpecter) Get(ctx, requester, id interface{}) *mock.Call {
	return e.mock.On("Get", ctx, requester, id)
}

func (e *MockEventServiceExpecter) List(ctx, requester, params interface{}) *mock.Call {
	return e.mock.On("List", ctx, requester, params)
}

func (e *MockEventServiceExpecter) Update(ctx, requester, id, params interface{}) *mock.Call {
	return e.mock.On("Update", ctx, requester, id, params)
}

func (e *MockEventServiceExpecter) Publish(ctx, requester, id interface{}) *mock.Call {
	return e.mock.On("Publish", ctx, requester, id)
}

func (e *MockEventServiceExpecter) Unpublish(ctx, requester, id interface{}) *mock.Call {
	return e.mock.On("Unpublish", ctx, requester, id)
}

func (e *MockEventServiceExpecter) Cancel(ctx, requester, id interface{}) *mock.Call {
	return e.mock.On("Cancel", ctx, requester, id)
}

func (e *MockEventServiceExpecter) UploadImage(ctx, requester, id, imageURL interface{}) *mock.Call {
	return e.mock.On("UploadImage", ctx, requester, id, imageURL)
}

func (m *MockEventService) Create(ctx context.Context, requester model.Requester, req *model.CreateEventRequest) (*model.Event, error) {
	args := m.Called(ctx, requester, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, requester *model.Requester, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, requester, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) List(ctx context.Context, requester *model.Requester, params model.ListEventsParams) ([]*model.Event, int, error) {
	args := m.Called(ctx, requester, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Event), args.Int(1), args.Error(2)
}

func (m *MockEventService) Update(ctx context.Context, requester model.Requester, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	args := m.Called(ctx, requester, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Publish(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, requester, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Unpublish(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, requester, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Cancel(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, requester, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) UploadImage(ctx context.Context, requester model.Requester, id uuid.UUID, imageURL string) (*model.Event, error) {
	args := m.Called(ctx, requester, id, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}
