// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock type for the PasswordHasher type
type MockPasswordHasher struct {
	mock.Mock
}

type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

// Hash provides a mock function with given fields: password
func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

type MockPasswordHasher_Hash_Call struct {
	*mock.Call
}

func (_e *MockPasswordHasher_Expecter) Hash(password any) *MockPasswordHasher_Hash_Call {
	return &MockPasswordHasher_Hash_Call{Call: _e.mock.On("Hash", password)}
}

func (_c *MockPasswordHasher_Hash_Call) Return(_a0 string, _a1 error) *MockPasswordHasher_Hash_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// Verify provides a mock function with given fields: password, hash
func (_m *MockPasswordHasher) Verify(password string, hash string) (bool, error) {
	ret := _m.Called(password, hash)

	return ret.Bool(0), ret.Error(1)
}

type MockPasswordHasher_Verify_Call struct {
	*mock.Call
}

func (_e *MockPasswordHasher_Expecter) Verify(password any, hash any) *MockPasswordHasher_Verify_Call {
	return &MockPasswordHasher_Verify_Call{Call: _e.mock.On("Verify", password, hash)}
}

func (_c *MockPasswordHasher_Verify_Call) Return(_a0 bool, _a1 error) *MockPasswordHasher_Verify_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockPasswordHasher creates a new instance of MockPasswordHasher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
