package mocks

import (
	"context"
	"io"
	"os"

	mock "github.com/stretchr/testify/mock"

	model "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// MockCorpusFSAdapter is a mock type for the CorpusFSAdapter type
type MockCorpusFSAdapter struct {
	mock.Mock
}

type MockCorpusFSAdapter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCorpusFSAdapter) EXPECT() *MockCorpusFSAdapter_Expecter {
	return &MockCorpusFSAdapter_Expecter{mock: &_m.Mock}
}

// ReadDir provides a mock function with given fields: ctx, dir
func (_m *MockCorpusFSAdapter) ReadDir(ctx context.Context, dir model.Path) ([]os.DirEntry, error) {
	ret := _m.Called(ctx, dir)

	if len(ret) == 0 {
		panic("no return value specified for ReadDir")
	}

	var r0 []os.DirEntry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) ([]os.DirEntry, error)); ok {
		return rf(ctx, dir)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) []os.DirEntry); ok {
		r0 = rf(ctx, dir)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]os.DirEntry)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Path) error); ok {
		r1 = rf(ctx, dir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCorpusFSAdapter_ReadDir_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadDir'
type MockCorpusFSAdapter_ReadDir_Call struct {
	*mock.Call
}

// ReadDir is a helper method to define mock.On call
//   - ctx context.Context
//   - dir model.Path
func (_e *MockCorpusFSAdapter_Expecter) ReadDir(ctx interface{}, dir interface{}) *MockCorpusFSAdapter_ReadDir_Call {
	return &MockCorpusFSAdapter_ReadDir_Call{Call: _e.mock.On("ReadDir", ctx, dir)}
}

func (_c *MockCorpusFSAdapter_ReadDir_Call) Run(run func(ctx context.Context, dir model.Path)) *MockCorpusFSAdapter_ReadDir_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path))
	})
	return _c
}

func (_c *MockCorpusFSAdapter_ReadDir_Call) Return(_a0 []os.DirEntry, _a1 error) *MockCorpusFSAdapter_ReadDir_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCorpusFSAdapter_ReadDir_Call) RunAndReturn(run func(context.Context, model.Path) ([]os.DirEntry, error)) *MockCorpusFSAdapter_ReadDir_Call {
	_c.Call.Return(run)
	return _c
}

// FileInfo provides a mock function with given fields: ctx, path
func (_m *MockCorpusFSAdapter) FileInfo(ctx context.Context, path model.Path) (os.FileInfo, error) {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for FileInfo")
	}

	var r0 os.FileInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) (os.FileInfo, error)); ok {
		return rf(ctx, path)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) os.FileInfo); ok {
		r0 = rf(ctx, path)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(os.FileInfo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Path) error); ok {
		r1 = rf(ctx, path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCorpusFSAdapter_FileInfo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FileInfo'
type MockCorpusFSAdapter_FileInfo_Call struct {
	*mock.Call
}

// FileInfo is a helper method to define mock.On call
//   - ctx context.Context
//   - path model.Path
func (_e *MockCorpusFSAdapter_Expecter) FileInfo(ctx interface{}, path interface{}) *MockCorpusFSAdapter_FileInfo_Call {
	return &MockCorpusFSAdapter_FileInfo_Call{Call: _e.mock.On("FileInfo", ctx, path)}
}

func (_c *MockCorpusFSAdapter_FileInfo_Call) Run(run func(ctx context.Context, path model.Path)) *MockCorpusFSAdapter_FileInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path))
	})
	return _c
}

func (_c *MockCorpusFSAdapter_FileInfo_Call) Return(_a0 os.FileInfo, _a1 error) *MockCorpusFSAdapter_FileInfo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCorpusFSAdapter_FileInfo_Call) RunAndReturn(run func(context.Context, model.Path) (os.FileInfo, error)) *MockCorpusFSAdapter_FileInfo_Call {
	_c.Call.Return(run)
	return _c
}

// MkdirAll provides a mock function with given fields: ctx, path
func (_m *MockCorpusFSAdapter) MkdirAll(ctx context.Context, path model.Path) error {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for MkdirAll")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) error); ok {
		r0 = rf(ctx, path)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCorpusFSAdapter_MkdirAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MkdirAll'
type MockCorpusFSAdapter_MkdirAll_Call struct {
	*mock.Call
}

// MkdirAll is a helper method to define mock.On call
//   - ctx context.Context
//   - path model.Path
func (_e *MockCorpusFSAdapter_Expecter) MkdirAll(ctx interface{}, path interface{}) *MockCorpusFSAdapter_MkdirAll_Call {
	return &MockCorpusFSAdapter_MkdirAll_Call{Call: _e.mock.On("MkdirAll", ctx, path)}
}

func (_c *MockCorpusFSAdapter_MkdirAll_Call) Run(run func(ctx context.Context, path model.Path)) *MockCorpusFSAdapter_MkdirAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path))
	})
	return _c
}

func (_c *MockCorpusFSAdapter_MkdirAll_Call) Return(_a0 error) *MockCorpusFSAdapter_MkdirAll_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCorpusFSAdapter_MkdirAll_Call) RunAndReturn(run func(context.Context, model.Path) error) *MockCorpusFSAdapter_MkdirAll_Call {
	_c.Call.Return(run)
	return _c
}

// WriteLines provides a mock function with given fields: ctx, path, lines
func (_m *MockCorpusFSAdapter) WriteLines(ctx context.Context, path model.Path, lines []string) error {
	ret := _m.Called(ctx, path, lines)

	if len(ret) == 0 {
		panic("no return value specified for WriteLines")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path, []string) error); ok {
		r0 = rf(ctx, path, lines)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCorpusFSAdapter_WriteLines_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteLines'
type MockCorpusFSAdapter_WriteLines_Call struct {
	*mock.Call
}

// WriteLines is a helper method to define mock.On call
//   - ctx context.Context
//   - path model.Path
//   - lines []string
func (_e *MockCorpusFSAdapter_Expecter) WriteLines(ctx interface{}, path interface{}, lines interface{}) *MockCorpusFSAdapter_WriteLines_Call {
	return &MockCorpusFSAdapter_WriteLines_Call{Call: _e.mock.On("WriteLines", ctx, path, lines)}
}

func (_c *MockCorpusFSAdapter_WriteLines_Call) Run(run func(ctx context.Context, path model.Path, lines []string)) *MockCorpusFSAdapter_WriteLines_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path), args[2].([]string))
	})
	return _c
}

func (_c *MockCorpusFSAdapter_WriteLines_Call) Return(_a0 error) *MockCorpusFSAdapter_WriteLines_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCorpusFSAdapter_WriteLines_Call) RunAndReturn(run func(context.Context, model.Path, []string) error) *MockCorpusFSAdapter_WriteLines_Call {
	_c.Call.Return(run)
	return _c
}

// Concatenate provides a mock function with given fields: ctx, dst, srcs
func (_m *MockCorpusFSAdapter) Concatenate(ctx context.Context, dst model.Path, srcs []model.Path) error {
	ret := _m.Called(ctx, dst, srcs)

	if len(ret) == 0 {
		panic("no return value specified for Concatenate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path, []model.Path) error); ok {
		r0 = rf(ctx, dst, srcs)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCorpusFSAdapter_Concatenate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Concatenate'
type MockCorpusFSAdapter_Concatenate_Call struct {
	*mock.Call
}

// Concatenate is a helper method to define mock.On call
//   - ctx context.Context
//   - dst model.Path
//   - srcs []model.Path
func (_e *MockCorpusFSAdapter_Expecter) Concatenate(ctx interface{}, dst interface{}, srcs interface{}) *MockCorpusFSAdapter_Concatenate_Call {
	return &MockCorpusFSAdapter_Concatenate_Call{Call: _e.mock.On("Concatenate", ctx, dst, srcs)}
}

func (_c *MockCorpusFSAdapter_Concatenate_Call) Run(run func(ctx context.Context, dst model.Path, srcs []model.Path)) *MockCorpusFSAdapter_Concatenate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path), args[2].([]model.Path))
	})
	return _c
}

func (_c *MockCorpusFSAdapter_Concatenate_Call) Return(_a0 error) *MockCorpusFSAdapter_Concatenate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCorpusFSAdapter_Concatenate_Call) RunAndReturn(run func(context.Context, model.Path, []model.Path) error) *MockCorpusFSAdapter_Concatenate_Call {
	_c.Call.Return(run)
	return _c
}

// OpenSequences provides a mock function with given fields: ctx, path
func (_m *MockCorpusFSAdapter) OpenSequences(ctx context.Context, path model.Path) (io.ReadCloser, error) {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for OpenSequences")
	}

	var r0 io.ReadCloser
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) (io.ReadCloser, error)); ok {
		return rf(ctx, path)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) io.ReadCloser); ok {
		r0 = rf(ctx, path)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(io.ReadCloser)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Path) error); ok {
		r1 = rf(ctx, path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCorpusFSAdapter_OpenSequences_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'OpenSequences'
type MockCorpusFSAdapter_OpenSequences_Call struct {
	*mock.Call
}

// OpenSequences is a helper method to define mock.On call
//   - ctx context.Context
//   - path model.Path
func (_e *MockCorpusFSAdapter_Expecter) OpenSequences(ctx interface{}, path interface{}) *MockCorpusFSAdapter_OpenSequences_Call {
	return &MockCorpusFSAdapter_OpenSequences_Call{Call: _e.mock.On("OpenSequences", ctx, path)}
}

func (_c *MockCorpusFSAdapter_OpenSequences_Call) Run(run func(ctx context.Context, path model.Path)) *MockCorpusFSAdapter_OpenSequences_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path))
	})
	return _c
}

func (_c *MockCorpusFSAdapter_OpenSequences_Call) Return(_a0 io.ReadCloser, _a1 error) *MockCorpusFSAdapter_OpenSequences_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCorpusFSAdapter_OpenSequences_Call) RunAndReturn(run func(context.Context, model.Path) (io.ReadCloser, error)) *MockCorpusFSAdapter_OpenSequences_Call {
	_c.Call.Return(run)
	return _c
}

// CreateGzip provides a mock function with given fields: ctx, path
func (_m *MockCorpusFSAdapter) CreateGzip(ctx context.Context, path model.Path) (io.WriteCloser, error) {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for CreateGzip")
	}

	var r0 io.WriteCloser
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) (io.WriteCloser, error)); ok {
		return rf(ctx, path)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) io.WriteCloser); ok {
		r0 = rf(ctx, path)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(io.WriteCloser)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Path) error); ok {
		r1 = rf(ctx, path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCorpusFSAdapter_CreateGzip_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateGzip'
type MockCorpusFSAdapter_CreateGzip_Call struct {
	*mock.Call
}

// CreateGzip is a helper method to define mock.On call
//   - ctx context.Context
//   - path model.Path
func (_e *MockCorpusFSAdapter_Expecter) CreateGzip(ctx interface{}, path interface{}) *MockCorpusFSAdapter_CreateGzip_Call {
	return &MockCorpusFSAdapter_CreateGzip_Call{Call: _e.mock.On("CreateGzip", ctx, path)}
}

func (_c *MockCorpusFSAdapter_CreateGzip_Call) Run(run func(ctx context.Context, path model.Path)) *MockCorpusFSAdapter_CreateGzip_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path))
	})
	return _c
}

func (_c *MockCorpusFSAdapter_CreateGzip_Call) Return(_a0 io.WriteCloser, _a1 error) *MockCorpusFSAdapter_CreateGzip_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCorpusFSAdapter_CreateGzip_Call) RunAndReturn(run func(context.Context, model.Path) (io.WriteCloser, error)) *MockCorpusFSAdapter_CreateGzip_Call {
	_c.Call.Return(run)
	return _c
}

// RemoveAll provides a mock function with given fields: ctx, path
func (_m *MockCorpusFSAdapter) RemoveAll(ctx context.Context, path model.Path) error {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for RemoveAll")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) error); ok {
		r0 = rf(ctx, path)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCorpusFSAdapter_RemoveAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemoveAll'
type MockCorpusFSAdapter_RemoveAll_Call struct {
	*mock.Call
}

// RemoveAll is a helper method to define mock.On call
//   - ctx context.Context
//   - path model.Path
func (_e *MockCorpusFSAdapter_Expecter) RemoveAll(ctx interface{}, path interface{}) *MockCorpusFSAdapter_RemoveAll_Call {
	return &MockCorpusFSAdapter_RemoveAll_Call{Call: _e.mock.On("RemoveAll", ctx, path)}
}

func (_c *MockCorpusFSAdapter_RemoveAll_Call) Run(run func(ctx context.Context, path model.Path)) *MockCorpusFSAdapter_RemoveAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path))
	})
	return _c
}

func (_c *MockCorpusFSAdapter_RemoveAll_Call) Return(_a0 error) *MockCorpusFSAdapter_RemoveAll_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCorpusFSAdapter_RemoveAll_Call) RunAndReturn(run func(context.Context, model.Path) error) *MockCorpusFSAdapter_RemoveAll_Call {
	_c.Call.Return(run)
	return _c
}

// JoinPath provides a mock function with given fields: elem
func (_m *MockCorpusFSAdapter) JoinPath(elem ...string) model.Path {
	_va := make([]interface{}, len(elem))
	for _i := range elem {
		_va[_i] = elem[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for JoinPath")
	}

	var r0 model.Path
	if rf, ok := ret.Get(0).(func(...string) model.Path); ok {
		r0 = rf(elem...)
	} else {
		r0 = ret.Get(0).(model.Path)
	}

	return r0
}

// MockCorpusFSAdapter_JoinPath_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'JoinPath'
type MockCorpusFSAdapter_JoinPath_Call struct {
	*mock.Call
}

// JoinPath is a helper method to define mock.On call
//   - elem ...string
func (_e *MockCorpusFSAdapter_Expecter) JoinPath(elem ...interface{}) *MockCorpusFSAdapter_JoinPath_Call {
	return &MockCorpusFSAdapter_JoinPath_Call{Call: _e.mock.On("JoinPath",
		append([]interface{}{}, elem...)...)}
}

func (_c *MockCorpusFSAdapter_JoinPath_Call) Run(run func(elem ...string)) *MockCorpusFSAdapter_JoinPath_Call {
	_c.Call.Run(func(args mock.Arguments) {
		variadicArgs := make([]string, len(args)-0)
		for i, a := range args[0:] {
			if a != nil {
				variadicArgs[i] = a.(string)
			}
		}
		run(variadicArgs...)
	})
	return _c
}

func (_c *MockCorpusFSAdapter_JoinPath_Call) Return(_a0 model.Path) *MockCorpusFSAdapter_JoinPath_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCorpusFSAdapter_JoinPath_Call) RunAndReturn(run func(...string) model.Path) *MockCorpusFSAdapter_JoinPath_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCorpusFSAdapter creates a new instance of MockCorpusFSAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCorpusFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCorpusFSAdapter {
	mock := &MockCorpusFSAdapter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
