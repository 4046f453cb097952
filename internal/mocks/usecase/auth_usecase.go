// Package usecase provides testify mocks for the use case interfaces.
package usecase

import (
	"context"

	"qkart/internal/domain/entity"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock type for the AuthUsecase type
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

// GetUser provides a mock function with given fields: ctx, id
func (_m *MockAuthUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

type MockAuthUsecase_GetUser_Call struct {
	*mock.Call
}

func (_e *MockAuthUsecase_Expecter) GetUser(ctx any, id any) *MockAuthUsecase_GetUser_Call {
	return &MockAuthUsecase_GetUser_Call{Call: _e.mock.On("GetUser", ctx, id)}
}

func (_c *MockAuthUsecase_GetUser_Call) Return(_a0 *entity.User, _a1 error) *MockAuthUsecase_GetUser_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *usecase.LoginOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.LoginOutput)
	}

	return r0, ret.Error(1)
}

type MockAuthUsecase_Login_Call struct {
	*mock.Call
}

func (_e *MockAuthUsecase_Expecter) Login(ctx any, input any) *MockAuthUsecase_Login_Call {
	return &MockAuthUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockAuthUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockAuthUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *usecase.RegisterOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.RegisterOutput)
	}

	return r0, ret.Error(1)
}

type MockAuthUsecase_Register_Call struct {
	*mock.Call
}

func (_e *MockAuthUsecase_Expecter) Register(ctx any, input any) *MockAuthUsecase_Register_Call {
	return &MockAuthUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockAuthUsecase_Register_Call) Return(_a0 *usecase.RegisterOutput, _a1 error) *MockAuthUsecase_Register_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// VerifyToken provides a mock function with given fields: ctx, token
func (_m *MockAuthUsecase) VerifyToken(ctx context.Context, token string) (*entity.TokenClaims, error) {
	ret := _m.Called(ctx, token)

	var r0 *entity.TokenClaims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.TokenClaims)
	}

	return r0, ret.Error(1)
}

type MockAuthUsecase_VerifyToken_Call struct {
	*mock.Call
}

func (_e *MockAuthUsecase_Expecter) VerifyToken(ctx any, token any) *MockAuthUsecase_VerifyToken_Call {
	return &MockAuthUsecase_VerifyToken_Call{Call: _e.mock.On("VerifyToken", ctx, token)}
}

func (_c *MockAuthUsecase_VerifyToken_Call) Return(_a0 *entity.TokenClaims, _a1 error) *MockAuthUsecase_VerifyToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockAuthUsecase creates a new instance of MockAuthUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
