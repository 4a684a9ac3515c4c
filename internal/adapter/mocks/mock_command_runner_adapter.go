package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	adapter "kmeroracle.dev/pkg/kmeroracle/internal/adapter"
)

// MockCommandRunnerAdapter is a mock type for the CommandRunnerAdapter type
type MockCommandRunnerAdapter struct {
	mock.Mock
}

type MockCommandRunnerAdapter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCommandRunnerAdapter) EXPECT() *MockCommandRunnerAdapter_Expecter {
	return &MockCommandRunnerAdapter_Expecter{mock: &_m.Mock}
}

// Run provides a mock function with given fields: ctx, command
func (_m *MockCommandRunnerAdapter) Run(ctx context.Context, command adapter.Command) error {
	ret := _m.Called(ctx, command)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, adapter.Command) error); ok {
		r0 = rf(ctx, command)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCommandRunnerAdapter_Run_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Run'
type MockCommandRunnerAdapter_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call
//   - ctx context.Context
//   - command adapter.Command
func (_e *MockCommandRunnerAdapter_Expecter) Run(ctx interface{}, command interface{}) *MockCommandRunnerAdapter_Run_Call {
	return &MockCommandRunnerAdapter_Run_Call{Call: _e.mock.On("Run", ctx, command)}
}

func (_c *MockCommandRunnerAdapter_Run_Call) Run(run func(ctx context.Context, command adapter.Command)) *MockCommandRunnerAdapter_Run_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(adapter.Command))
	})
	return _c
}

func (_c *MockCommandRunnerAdapter_Run_Call) Return(_a0 error) *MockCommandRunnerAdapter_Run_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCommandRunnerAdapter_Run_Call) RunAndReturn(run func(context.Context, adapter.Command) error) *MockCommandRunnerAdapter_Run_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCommandRunnerAdapter creates a new instance of MockCommandRunnerAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCommandRunnerAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommandRunnerAdapter {
	mock := &MockCommandRunnerAdapter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
