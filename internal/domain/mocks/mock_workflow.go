package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	domain "kmeroracle.dev/pkg/kmeroracle/internal/domain"
)

// MockWorkflow is a mock type for the Workflow type
type MockWorkflow struct {
	mock.Mock
}

type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Verify provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Verify(ctx context.Context, args domain.VerifyArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.VerifyArgs) error); ok {
		r0 = rf(ctx, args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Verify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Verify'
type MockWorkflow_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.VerifyArgs
func (_e *MockWorkflow_Expecter) Verify(ctx interface{}, args interface{}) *MockWorkflow_Verify_Call {
	return &MockWorkflow_Verify_Call{Call: _e.mock.On("Verify", ctx, args)}
}

func (_c *MockWorkflow_Verify_Call) Run(run func(ctx context.Context, args domain.VerifyArgs)) *MockWorkflow_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.VerifyArgs))
	})
	return _c
}

func (_c *MockWorkflow_Verify_Call) Return(_a0 error) *MockWorkflow_Verify_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_Verify_Call) RunAndReturn(run func(context.Context, domain.VerifyArgs) error) *MockWorkflow_Verify_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) List(ctx context.Context, args domain.VerifyArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.VerifyArgs) error); ok {
		r0 = rf(ctx, args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockWorkflow_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.VerifyArgs
func (_e *MockWorkflow_Expecter) List(ctx interface{}, args interface{}) *MockWorkflow_List_Call {
	return &MockWorkflow_List_Call{Call: _e.mock.On("List", ctx, args)}
}

func (_c *MockWorkflow_List_Call) Run(run func(ctx context.Context, args domain.VerifyArgs)) *MockWorkflow_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.VerifyArgs))
	})
	return _c
}

func (_c *MockWorkflow_List_Call) Return(_a0 error) *MockWorkflow_List_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_List_Call) RunAndReturn(run func(context.Context, domain.VerifyArgs) error) *MockWorkflow_List_Call {
	_c.Call.Return(run)
	return _c
}

// Query provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Query(ctx context.Context, args domain.QueryArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Query")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.QueryArgs) error); ok {
		r0 = rf(ctx, args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Query_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Query'
type MockWorkflow_Query_Call struct {
	*mock.Call
}

// Query is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.QueryArgs
func (_e *MockWorkflow_Expecter) Query(ctx interface{}, args interface{}) *MockWorkflow_Query_Call {
	return &MockWorkflow_Query_Call{Call: _e.mock.On("Query", ctx, args)}
}

func (_c *MockWorkflow_Query_Call) Run(run func(ctx context.Context, args domain.QueryArgs)) *MockWorkflow_Query_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.QueryArgs))
	})
	return _c
}

func (_c *MockWorkflow_Query_Call) Return(_a0 error) *MockWorkflow_Query_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_Query_Call) RunAndReturn(run func(context.Context, domain.QueryArgs) error) *MockWorkflow_Query_Call {
	_c.Call.Return(run)
	return _c
}

// Compare provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Compare(ctx context.Context, args domain.CompareArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Compare")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.CompareArgs) error); ok {
		r0 = rf(ctx, args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Compare_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Compare'
type MockWorkflow_Compare_Call struct {
	*mock.Call
}

// Compare is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.CompareArgs
func (_e *MockWorkflow_Expecter) Compare(ctx interface{}, args interface{}) *MockWorkflow_Compare_Call {
	return &MockWorkflow_Compare_Call{Call: _e.mock.On("Compare", ctx, args)}
}

func (_c *MockWorkflow_Compare_Call) Run(run func(ctx context.Context, args domain.CompareArgs)) *MockWorkflow_Compare_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.CompareArgs))
	})
	return _c
}

func (_c *MockWorkflow_Compare_Call) Return(_a0 error) *MockWorkflow_Compare_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_Compare_Call) RunAndReturn(run func(context.Context, domain.CompareArgs) error) *MockWorkflow_Compare_Call {
	_c.Call.Return(run)
	return _c
}

// GenerateQueries provides a mock function with given fields: ctx, params
func (_m *MockWorkflow) GenerateQueries(ctx context.Context, params domain.MutationParams) error {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for GenerateQueries")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.MutationParams) error); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_GenerateQueries_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateQueries'
type MockWorkflow_GenerateQueries_Call struct {
	*mock.Call
}

// GenerateQueries is a helper method to define mock.On call
//   - ctx context.Context
//   - params domain.MutationParams
func (_e *MockWorkflow_Expecter) GenerateQueries(ctx interface{}, params interface{}) *MockWorkflow_GenerateQueries_Call {
	return &MockWorkflow_GenerateQueries_Call{Call: _e.mock.On("GenerateQueries", ctx, params)}
}

func (_c *MockWorkflow_GenerateQueries_Call) Run(run func(ctx context.Context, params domain.MutationParams)) *MockWorkflow_GenerateQueries_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.MutationParams))
	})
	return _c
}

func (_c *MockWorkflow_GenerateQueries_Call) Return(_a0 error) *MockWorkflow_GenerateQueries_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_GenerateQueries_Call) RunAndReturn(run func(context.Context, domain.MutationParams) error) *MockWorkflow_GenerateQueries_Call {
	_c.Call.Return(run)
	return _c
}

// View provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for View")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ViewArgs) error); ok {
		r0 = rf(ctx, args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_View_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'View'
type MockWorkflow_View_Call struct {
	*mock.Call
}

// View is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.ViewArgs
func (_e *MockWorkflow_Expecter) View(ctx interface{}, args interface{}) *MockWorkflow_View_Call {
	return &MockWorkflow_View_Call{Call: _e.mock.On("View", ctx, args)}
}

func (_c *MockWorkflow_View_Call) Run(run func(ctx context.Context, args domain.ViewArgs)) *MockWorkflow_View_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ViewArgs))
	})
	return _c
}

func (_c *MockWorkflow_View_Call) Return(_a0 error) *MockWorkflow_View_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_View_Call) RunAndReturn(run func(context.Context, domain.ViewArgs) error) *MockWorkflow_View_Call {
	_c.Call.Return(run)
	return _c
}

// Merge provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Merge(ctx context.Context, args domain.MergeArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Merge")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.MergeArgs) error); ok {
		r0 = rf(ctx, args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Merge_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Merge'
type MockWorkflow_Merge_Call struct {
	*mock.Call
}

// Merge is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.MergeArgs
func (_e *MockWorkflow_Expecter) Merge(ctx interface{}, args interface{}) *MockWorkflow_Merge_Call {
	return &MockWorkflow_Merge_Call{Call: _e.mock.On("Merge", ctx, args)}
}

func (_c *MockWorkflow_Merge_Call) Run(run func(ctx context.Context, args domain.MergeArgs)) *MockWorkflow_Merge_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.MergeArgs))
	})
	return _c
}

func (_c *MockWorkflow_Merge_Call) Return(_a0 error) *MockWorkflow_Merge_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_Merge_Call) RunAndReturn(run func(context.Context, domain.MergeArgs) error) *MockWorkflow_Merge_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mock := &MockWorkflow{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
