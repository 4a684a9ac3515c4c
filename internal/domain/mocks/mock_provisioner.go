package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	domain "kmeroracle.dev/pkg/kmeroracle/internal/domain"
	model "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// MockProvisioner is a mock type for the Provisioner type
type MockProvisioner struct {
	mock.Mock
}

type MockProvisioner_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProvisioner) EXPECT() *MockProvisioner_Expecter {
	return &MockProvisioner_Expecter{mock: &_m.Mock}
}

// Discover provides a mock function with given fields: ctx, corpusDir
func (_m *MockProvisioner) Discover(ctx context.Context, corpusDir model.Path) (model.InputFileSet, error) {
	ret := _m.Called(ctx, corpusDir)

	if len(ret) == 0 {
		panic("no return value specified for Discover")
	}

	var r0 model.InputFileSet
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) (model.InputFileSet, error)); ok {
		return rf(ctx, corpusDir)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) model.InputFileSet); ok {
		r0 = rf(ctx, corpusDir)
	} else {
		r0 = ret.Get(0).(model.InputFileSet)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Path) error); ok {
		r1 = rf(ctx, corpusDir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProvisioner_Discover_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Discover'
type MockProvisioner_Discover_Call struct {
	*mock.Call
}

// Discover is a helper method to define mock.On call
//   - ctx context.Context
//   - corpusDir model.Path
func (_e *MockProvisioner_Expecter) Discover(ctx interface{}, corpusDir interface{}) *MockProvisioner_Discover_Call {
	return &MockProvisioner_Discover_Call{Call: _e.mock.On("Discover", ctx, corpusDir)}
}

func (_c *MockProvisioner_Discover_Call) Run(run func(ctx context.Context, corpusDir model.Path)) *MockProvisioner_Discover_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path))
	})
	return _c
}

func (_c *MockProvisioner_Discover_Call) Return(_a0 model.InputFileSet, _a1 error) *MockProvisioner_Discover_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProvisioner_Discover_Call) RunAndReturn(run func(context.Context, model.Path) (model.InputFileSet, error)) *MockProvisioner_Discover_Call {
	_c.Call.Return(run)
	return _c
}

// Prepare provides a mock function with given fields: ctx, corpusDir, dir
func (_m *MockProvisioner) Prepare(ctx context.Context, corpusDir model.Path, dir model.Path) (domain.Fixtures, error) {
	ret := _m.Called(ctx, corpusDir, dir)

	if len(ret) == 0 {
		panic("no return value specified for Prepare")
	}

	var r0 domain.Fixtures
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path, model.Path) (domain.Fixtures, error)); ok {
		return rf(ctx, corpusDir, dir)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Path, model.Path) domain.Fixtures); ok {
		r0 = rf(ctx, corpusDir, dir)
	} else {
		r0 = ret.Get(0).(domain.Fixtures)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Path, model.Path) error); ok {
		r1 = rf(ctx, corpusDir, dir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProvisioner_Prepare_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Prepare'
type MockProvisioner_Prepare_Call struct {
	*mock.Call
}

// Prepare is a helper method to define mock.On call
//   - ctx context.Context
//   - corpusDir model.Path
//   - dir model.Path
func (_e *MockProvisioner_Expecter) Prepare(ctx interface{}, corpusDir interface{}, dir interface{}) *MockProvisioner_Prepare_Call {
	return &MockProvisioner_Prepare_Call{Call: _e.mock.On("Prepare", ctx, corpusDir, dir)}
}

func (_c *MockProvisioner_Prepare_Call) Run(run func(ctx context.Context, corpusDir model.Path, dir model.Path)) *MockProvisioner_Prepare_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path), args[2].(model.Path))
	})
	return _c
}

func (_c *MockProvisioner_Prepare_Call) Return(_a0 domain.Fixtures, _a1 error) *MockProvisioner_Prepare_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProvisioner_Prepare_Call) RunAndReturn(run func(context.Context, model.Path, model.Path) (domain.Fixtures, error)) *MockProvisioner_Prepare_Call {
	_c.Call.Return(run)
	return _c
}

// WriteFileList provides a mock function with given fields: ctx, set, dst
func (_m *MockProvisioner) WriteFileList(ctx context.Context, set model.InputFileSet, dst model.Path) error {
	ret := _m.Called(ctx, set, dst)

	if len(ret) == 0 {
		panic("no return value specified for WriteFileList")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.InputFileSet, model.Path) error); ok {
		r0 = rf(ctx, set, dst)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProvisioner_WriteFileList_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteFileList'
type MockProvisioner_WriteFileList_Call struct {
	*mock.Call
}

// WriteFileList is a helper method to define mock.On call
//   - ctx context.Context
//   - set model.InputFileSet
//   - dst model.Path
func (_e *MockProvisioner_Expecter) WriteFileList(ctx interface{}, set interface{}, dst interface{}) *MockProvisioner_WriteFileList_Call {
	return &MockProvisioner_WriteFileList_Call{Call: _e.mock.On("WriteFileList", ctx, set, dst)}
}

func (_c *MockProvisioner_WriteFileList_Call) Run(run func(ctx context.Context, set model.InputFileSet, dst model.Path)) *MockProvisioner_WriteFileList_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.InputFileSet), args[2].(model.Path))
	})
	return _c
}

func (_c *MockProvisioner_WriteFileList_Call) Return(_a0 error) *MockProvisioner_WriteFileList_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProvisioner_WriteFileList_Call) RunAndReturn(run func(context.Context, model.InputFileSet, model.Path) error) *MockProvisioner_WriteFileList_Call {
	_c.Call.Return(run)
	return _c
}

// Concatenate provides a mock function with given fields: ctx, set, dst
func (_m *MockProvisioner) Concatenate(ctx context.Context, set model.InputFileSet, dst model.Path) error {
	ret := _m.Called(ctx, set, dst)

	if len(ret) == 0 {
		panic("no return value specified for Concatenate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.InputFileSet, model.Path) error); ok {
		r0 = rf(ctx, set, dst)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProvisioner_Concatenate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Concatenate'
type MockProvisioner_Concatenate_Call struct {
	*mock.Call
}

// Concatenate is a helper method to define mock.On call
//   - ctx context.Context
//   - set model.InputFileSet
//   - dst model.Path
func (_e *MockProvisioner_Expecter) Concatenate(ctx interface{}, set interface{}, dst interface{}) *MockProvisioner_Concatenate_Call {
	return &MockProvisioner_Concatenate_Call{Call: _e.mock.On("Concatenate", ctx, set, dst)}
}

func (_c *MockProvisioner_Concatenate_Call) Run(run func(ctx context.Context, set model.InputFileSet, dst model.Path)) *MockProvisioner_Concatenate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.InputFileSet), args[2].(model.Path))
	})
	return _c
}

func (_c *MockProvisioner_Concatenate_Call) Return(_a0 error) *MockProvisioner_Concatenate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProvisioner_Concatenate_Call) RunAndReturn(run func(context.Context, model.InputFileSet, model.Path) error) *MockProvisioner_Concatenate_Call {
	_c.Call.Return(run)
	return _c
}

// WriteColorFile provides a mock function with given fields: ctx, set, dst
func (_m *MockProvisioner) WriteColorFile(ctx context.Context, set model.InputFileSet, dst model.Path) error {
	ret := _m.Called(ctx, set, dst)

	if len(ret) == 0 {
		panic("no return value specified for WriteColorFile")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.InputFileSet, model.Path) error); ok {
		r0 = rf(ctx, set, dst)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProvisioner_WriteColorFile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteColorFile'
type MockProvisioner_WriteColorFile_Call struct {
	*mock.Call
}

// WriteColorFile is a helper method to define mock.On call
//   - ctx context.Context
//   - set model.InputFileSet
//   - dst model.Path
func (_e *MockProvisioner_Expecter) WriteColorFile(ctx interface{}, set interface{}, dst interface{}) *MockProvisioner_WriteColorFile_Call {
	return &MockProvisioner_WriteColorFile_Call{Call: _e.mock.On("WriteColorFile", ctx, set, dst)}
}

func (_c *MockProvisioner_WriteColorFile_Call) Run(run func(ctx context.Context, set model.InputFileSet, dst model.Path)) *MockProvisioner_WriteColorFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.InputFileSet), args[2].(model.Path))
	})
	return _c
}

func (_c *MockProvisioner_WriteColorFile_Call) Return(_a0 error) *MockProvisioner_WriteColorFile_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProvisioner_WriteColorFile_Call) RunAndReturn(run func(context.Context, model.InputFileSet, model.Path) error) *MockProvisioner_WriteColorFile_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockProvisioner creates a new instance of MockProvisioner. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProvisioner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProvisioner {
	mock := &MockProvisioner{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
