package service

import (
	"context"

	"qkart/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock type for the EventPublisher type
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with no fields
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

type MockEventPublisher_Close_Call struct {
	*mock.Call
}

func (_e *MockEventPublisher_Expecter) Close() *MockEventPublisher_Close_Call {
	return &MockEventPublisher_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventPublisher_Close_Call) Return(_a0 error) *MockEventPublisher_Close_Call {
	_c.Call.Return(_a0)

	return _c
}

// PublishUserRegistered provides a mock function with given fields: ctx, event
func (_m *MockEventPublisher) PublishUserRegistered(ctx context.Context, event *service.UserRegisteredEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

type MockEventPublisher_PublishUserRegistered_Call struct {
	*mock.Call
}

func (_e *MockEventPublisher_Expecter) PublishUserRegistered(ctx any, event any) *MockEventPublisher_PublishUserRegistered_Call {
	return &MockEventPublisher_PublishUserRegistered_Call{Call: _e.mock.On("PublishUserRegistered", ctx, event)}
}

func (_c *MockEventPublisher_PublishUserRegistered_Call) Run(run func(ctx context.Context, event *service.UserRegisteredEvent)) *MockEventPublisher_PublishUserRegistered_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.UserRegisteredEvent))
	})

	return _c
}

func (_c *MockEventPublisher_PublishUserRegistered_Call) Return(_a0 error) *MockEventPublisher_PublishUserRegistered_Call {
	_c.Call.Return(_a0)

	return _c
}

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
