package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	model "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// MockOracle is a mock type for the Oracle type
type MockOracle struct {
	mock.Mock
}

type MockOracle_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOracle) EXPECT() *MockOracle_Expecter {
	return &MockOracle_Expecter{mock: &_m.Mock}
}

// Compare provides a mock function with given fields: ctx, subject, reference, mode
func (_m *MockOracle) Compare(ctx context.Context, subject model.DumpArtifact, reference model.DumpArtifact, mode model.CompareMode) (model.ComparisonResult, error) {
	ret := _m.Called(ctx, subject, reference, mode)

	if len(ret) == 0 {
		panic("no return value specified for Compare")
	}

	var r0 model.ComparisonResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.DumpArtifact, model.DumpArtifact, model.CompareMode) (model.ComparisonResult, error)); ok {
		return rf(ctx, subject, reference, mode)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.DumpArtifact, model.DumpArtifact, model.CompareMode) model.ComparisonResult); ok {
		r0 = rf(ctx, subject, reference, mode)
	} else {
		r0 = ret.Get(0).(model.ComparisonResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.DumpArtifact, model.DumpArtifact, model.CompareMode) error); ok {
		r1 = rf(ctx, subject, reference, mode)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOracle_Compare_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Compare'
type MockOracle_Compare_Call struct {
	*mock.Call
}

// Compare is a helper method to define mock.On call
//   - ctx context.Context
//   - subject model.DumpArtifact
//   - reference model.DumpArtifact
//   - mode model.CompareMode
func (_e *MockOracle_Expecter) Compare(ctx interface{}, subject interface{}, reference interface{}, mode interface{}) *MockOracle_Compare_Call {
	return &MockOracle_Compare_Call{Call: _e.mock.On("Compare", ctx, subject, reference, mode)}
}

func (_c *MockOracle_Compare_Call) Run(run func(ctx context.Context, subject model.DumpArtifact, reference model.DumpArtifact, mode model.CompareMode)) *MockOracle_Compare_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.DumpArtifact), args[2].(model.DumpArtifact), args[3].(model.CompareMode))
	})
	return _c
}

func (_c *MockOracle_Compare_Call) Return(_a0 model.ComparisonResult, _a1 error) *MockOracle_Compare_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOracle_Compare_Call) RunAndReturn(run func(context.Context, model.DumpArtifact, model.DumpArtifact, model.CompareMode) (model.ComparisonResult, error)) *MockOracle_Compare_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockOracle creates a new instance of MockOracle. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOracle(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOracle {
	mock := &MockOracle{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
