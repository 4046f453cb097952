package service

import (
	"time"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// AccessTokenTTL provides a mock function with no fields
func (_m *MockTokenService) AccessTokenTTL() time.Duration {
	ret := _m.Called()

	return ret.Get(0).(time.Duration)
}

type MockTokenService_AccessTokenTTL_Call struct {
	*mock.Call
}

func (_e *MockTokenService_Expecter) AccessTokenTTL() *MockTokenService_AccessTokenTTL_Call {
	return &MockTokenService_AccessTokenTTL_Call{Call: _e.mock.On("AccessTokenTTL")}
}

func (_c *MockTokenService_AccessTokenTTL_Call) Return(_a0 time.Duration) *MockTokenService_AccessTokenTTL_Call {
	_c.Call.Return(_a0)

	return _c
}

// Issue provides a mock function with given fields: userID, ttl
func (_m *MockTokenService) Issue(userID uuid.UUID, ttl time.Duration) (*entity.AccessToken, error) {
	ret := _m.Called(userID, ttl)

	var r0 *entity.AccessToken
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.AccessToken)
	}

	return r0, ret.Error(1)
}

type MockTokenService_Issue_Call struct {
	*mock.Call
}

func (_e *MockTokenService_Expecter) Issue(userID any, ttl any) *MockTokenService_Issue_Call {
	return &MockTokenService_Issue_Call{Call: _e.mock.On("Issue", userID, ttl)}
}

func (_c *MockTokenService_Issue_Call) Return(_a0 *entity.AccessToken, _a1 error) *MockTokenService_Issue_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// Verify provides a mock function with given fields: tokenString
func (_m *MockTokenService) Verify(tokenString string) (*entity.TokenClaims, error) {
	ret := _m.Called(tokenString)

	var r0 *entity.TokenClaims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.TokenClaims)
	}

	return r0, ret.Error(1)
}

type MockTokenService_Verify_Call struct {
	*mock.Call
}

func (_e *MockTokenService_Expecter) Verify(tokenString any) *MockTokenService_Verify_Call {
	return &MockTokenService_Verify_Call{Call: _e.mock.On("Verify", tokenString)}
}

func (_c *MockTokenService_Verify_Call) Return(_a0 *entity.TokenClaims, _a1 error) *MockTokenService_Verify_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
