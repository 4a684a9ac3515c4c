package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	model "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// MockReportStore is a mock type for the ReportStore type
type MockReportStore struct {
	mock.Mock
}

type MockReportStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportStore) EXPECT() *MockReportStore_Expecter {
	return &MockReportStore_Expecter{mock: &_m.Mock}
}

// SaveReport provides a mock function with given fields: ctx, dir, report
func (_m *MockReportStore) SaveReport(ctx context.Context, dir model.Path, report model.RunReport) error {
	ret := _m.Called(ctx, dir, report)

	if len(ret) == 0 {
		panic("no return value specified for SaveReport")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path, model.RunReport) error); ok {
		r0 = rf(ctx, dir, report)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockReportStore_SaveReport_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveReport'
type MockReportStore_SaveReport_Call struct {
	*mock.Call
}

// SaveReport is a helper method to define mock.On call
//   - ctx context.Context
//   - dir model.Path
//   - report model.RunReport
func (_e *MockReportStore_Expecter) SaveReport(ctx interface{}, dir interface{}, report interface{}) *MockReportStore_SaveReport_Call {
	return &MockReportStore_SaveReport_Call{Call: _e.mock.On("SaveReport", ctx, dir, report)}
}

func (_c *MockReportStore_SaveReport_Call) Run(run func(ctx context.Context, dir model.Path, report model.RunReport)) *MockReportStore_SaveReport_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path), args[2].(model.RunReport))
	})
	return _c
}

func (_c *MockReportStore_SaveReport_Call) Return(_a0 error) *MockReportStore_SaveReport_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockReportStore_SaveReport_Call) RunAndReturn(run func(context.Context, model.Path, model.RunReport) error) *MockReportStore_SaveReport_Call {
	_c.Call.Return(run)
	return _c
}

// LoadReport provides a mock function with given fields: ctx, dir
func (_m *MockReportStore) LoadReport(ctx context.Context, dir model.Path) (model.RunReport, error) {
	ret := _m.Called(ctx, dir)

	if len(ret) == 0 {
		panic("no return value specified for LoadReport")
	}

	var r0 model.RunReport
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) (model.RunReport, error)); ok {
		return rf(ctx, dir)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) model.RunReport); ok {
		r0 = rf(ctx, dir)
	} else {
		r0 = ret.Get(0).(model.RunReport)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Path) error); ok {
		r1 = rf(ctx, dir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportStore_LoadReport_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LoadReport'
type MockReportStore_LoadReport_Call struct {
	*mock.Call
}

// LoadReport is a helper method to define mock.On call
//   - ctx context.Context
//   - dir model.Path
func (_e *MockReportStore_Expecter) LoadReport(ctx interface{}, dir interface{}) *MockReportStore_LoadReport_Call {
	return &MockReportStore_LoadReport_Call{Call: _e.mock.On("LoadReport", ctx, dir)}
}

func (_c *MockReportStore_LoadReport_Call) Run(run func(ctx context.Context, dir model.Path)) *MockReportStore_LoadReport_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path))
	})
	return _c
}

func (_c *MockReportStore_LoadReport_Call) Return(_a0 model.RunReport, _a1 error) *MockReportStore_LoadReport_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportStore_LoadReport_Call) RunAndReturn(run func(context.Context, model.Path) (model.RunReport, error)) *MockReportStore_LoadReport_Call {
	_c.Call.Return(run)
	return _c
}

// ShardDirs provides a mock function with given fields: ctx, dir
func (_m *MockReportStore) ShardDirs(ctx context.Context, dir model.Path) ([]model.Path, error) {
	ret := _m.Called(ctx, dir)

	if len(ret) == 0 {
		panic("no return value specified for ShardDirs")
	}

	var r0 []model.Path
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) ([]model.Path, error)); ok {
		return rf(ctx, dir)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) []model.Path); ok {
		r0 = rf(ctx, dir)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Path)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Path) error); ok {
		r1 = rf(ctx, dir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportStore_ShardDirs_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ShardDirs'
type MockReportStore_ShardDirs_Call struct {
	*mock.Call
}

// ShardDirs is a helper method to define mock.On call
//   - ctx context.Context
//   - dir model.Path
func (_e *MockReportStore_Expecter) ShardDirs(ctx interface{}, dir interface{}) *MockReportStore_ShardDirs_Call {
	return &MockReportStore_ShardDirs_Call{Call: _e.mock.On("ShardDirs", ctx, dir)}
}

func (_c *MockReportStore_ShardDirs_Call) Run(run func(ctx context.Context, dir model.Path)) *MockReportStore_ShardDirs_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path))
	})
	return _c
}

func (_c *MockReportStore_ShardDirs_Call) Return(_a0 []model.Path, _a1 error) *MockReportStore_ShardDirs_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportStore_ShardDirs_Call) RunAndReturn(run func(context.Context, model.Path) ([]model.Path, error)) *MockReportStore_ShardDirs_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockReportStore creates a new instance of MockReportStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mock := &MockReportStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
