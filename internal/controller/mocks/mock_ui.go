package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	controller "kmeroracle.dev/pkg/kmeroracle/internal/controller"
	model "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// MockUI is a mock type for the UI type
type MockUI struct {
	mock.Mock
}

type MockUI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// Start provides a mock function with given fields: ctx, options
func (_m *MockUI) Start(ctx context.Context, options ...controller.StartOption) error {
	_va := make([]interface{}, len(options))
	for _i := range options {
		_va[_i] = options[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, ctx)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for Start")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ...controller.StartOption) error); ok {
		r0 = rf(ctx, options...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_Start_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Start'
type MockUI_Start_Call struct {
	*mock.Call
}

// Start is a helper method to define mock.On call
//   - ctx context.Context
//   - options ...controller.StartOption
func (_e *MockUI_Expecter) Start(ctx interface{}, options ...interface{}) *MockUI_Start_Call {
	return &MockUI_Start_Call{Call: _e.mock.On("Start",
		append([]interface{}{ctx}, options...)...)}
}

func (_c *MockUI_Start_Call) Run(run func(ctx context.Context, options ...controller.StartOption)) *MockUI_Start_Call {
	_c.Call.Run(func(args mock.Arguments) {
		variadicArgs := make([]controller.StartOption, len(args)-1)
		for i, a := range args[1:] {
			if a != nil {
				variadicArgs[i] = a.(controller.StartOption)
			}
		}
		run(args[0].(context.Context), variadicArgs...)
	})
	return _c
}

func (_c *MockUI_Start_Call) Return(_a0 error) *MockUI_Start_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUI_Start_Call) RunAndReturn(run func(context.Context, ...controller.StartOption) error) *MockUI_Start_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with given fields: ctx
func (_m *MockUI) Close(ctx context.Context) {
	_m.Called(ctx)
}

// MockUI_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockUI_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockUI_Expecter) Close(ctx interface{}) *MockUI_Close_Call {
	return &MockUI_Close_Call{Call: _e.mock.On("Close", ctx)}
}

func (_c *MockUI_Close_Call) Run(run func(ctx context.Context)) *MockUI_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUI_Close_Call) Return() *MockUI_Close_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_Close_Call) RunAndReturn(run func(context.Context)) *MockUI_Close_Call {
	_c.Run(run)
	return _c
}

// Wait provides a mock function with given fields: ctx
func (_m *MockUI) Wait(ctx context.Context) {
	_m.Called(ctx)
}

// MockUI_Wait_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Wait'
type MockUI_Wait_Call struct {
	*mock.Call
}

// Wait is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockUI_Expecter) Wait(ctx interface{}) *MockUI_Wait_Call {
	return &MockUI_Wait_Call{Call: _e.mock.On("Wait", ctx)}
}

func (_c *MockUI_Wait_Call) Run(run func(ctx context.Context)) *MockUI_Wait_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUI_Wait_Call) Return() *MockUI_Wait_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_Wait_Call) RunAndReturn(run func(context.Context)) *MockUI_Wait_Call {
	_c.Run(run)
	return _c
}

// DisplayRunInfo provides a mock function with given fields: ctx, info
func (_m *MockUI) DisplayRunInfo(ctx context.Context, info controller.RunInfo) {
	_m.Called(ctx, info)
}

// MockUI_DisplayRunInfo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayRunInfo'
type MockUI_DisplayRunInfo_Call struct {
	*mock.Call
}

// DisplayRunInfo is a helper method to define mock.On call
//   - ctx context.Context
//   - info controller.RunInfo
func (_e *MockUI_Expecter) DisplayRunInfo(ctx interface{}, info interface{}) *MockUI_DisplayRunInfo_Call {
	return &MockUI_DisplayRunInfo_Call{Call: _e.mock.On("DisplayRunInfo", ctx, info)}
}

func (_c *MockUI_DisplayRunInfo_Call) Run(run func(ctx context.Context, info controller.RunInfo)) *MockUI_DisplayRunInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(controller.RunInfo))
	})
	return _c
}

func (_c *MockUI_DisplayRunInfo_Call) Return() *MockUI_DisplayRunInfo_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_DisplayRunInfo_Call) RunAndReturn(run func(context.Context, controller.RunInfo)) *MockUI_DisplayRunInfo_Call {
	_c.Run(run)
	return _c
}

// DisplayRowStarted provides a mock function with given fields: ctx, index, name, worker
func (_m *MockUI) DisplayRowStarted(ctx context.Context, index int, name string, worker int) {
	_m.Called(ctx, index, name, worker)
}

// MockUI_DisplayRowStarted_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayRowStarted'
type MockUI_DisplayRowStarted_Call struct {
	*mock.Call
}

// DisplayRowStarted is a helper method to define mock.On call
//   - ctx context.Context
//   - index int
//   - name string
//   - worker int
func (_e *MockUI_Expecter) DisplayRowStarted(ctx interface{}, index interface{}, name interface{}, worker interface{}) *MockUI_DisplayRowStarted_Call {
	return &MockUI_DisplayRowStarted_Call{Call: _e.mock.On("DisplayRowStarted", ctx, index, name, worker)}
}

func (_c *MockUI_DisplayRowStarted_Call) Run(run func(ctx context.Context, index int, name string, worker int)) *MockUI_DisplayRowStarted_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int), args[2].(string), args[3].(int))
	})
	return _c
}

func (_c *MockUI_DisplayRowStarted_Call) Return() *MockUI_DisplayRowStarted_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_DisplayRowStarted_Call) RunAndReturn(run func(context.Context, int, string, int)) *MockUI_DisplayRowStarted_Call {
	_c.Run(run)
	return _c
}

// DisplayRowCompleted provides a mock function with given fields: ctx, row
func (_m *MockUI) DisplayRowCompleted(ctx context.Context, row model.RowReport) {
	_m.Called(ctx, row)
}

// MockUI_DisplayRowCompleted_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayRowCompleted'
type MockUI_DisplayRowCompleted_Call struct {
	*mock.Call
}

// DisplayRowCompleted is a helper method to define mock.On call
//   - ctx context.Context
//   - row model.RowReport
func (_e *MockUI_Expecter) DisplayRowCompleted(ctx interface{}, row interface{}) *MockUI_DisplayRowCompleted_Call {
	return &MockUI_DisplayRowCompleted_Call{Call: _e.mock.On("DisplayRowCompleted", ctx, row)}
}

func (_c *MockUI_DisplayRowCompleted_Call) Run(run func(ctx context.Context, row model.RowReport)) *MockUI_DisplayRowCompleted_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.RowReport))
	})
	return _c
}

func (_c *MockUI_DisplayRowCompleted_Call) Return() *MockUI_DisplayRowCompleted_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_DisplayRowCompleted_Call) RunAndReturn(run func(context.Context, model.RowReport)) *MockUI_DisplayRowCompleted_Call {
	_c.Run(run)
	return _c
}

// DisplayReport provides a mock function with given fields: ctx, report
func (_m *MockUI) DisplayReport(ctx context.Context, report model.RunReport) error {
	ret := _m.Called(ctx, report)

	if len(ret) == 0 {
		panic("no return value specified for DisplayReport")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.RunReport) error); ok {
		r0 = rf(ctx, report)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_DisplayReport_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayReport'
type MockUI_DisplayReport_Call struct {
	*mock.Call
}

// DisplayReport is a helper method to define mock.On call
//   - ctx context.Context
//   - report model.RunReport
func (_e *MockUI_Expecter) DisplayReport(ctx interface{}, report interface{}) *MockUI_DisplayReport_Call {
	return &MockUI_DisplayReport_Call{Call: _e.mock.On("DisplayReport", ctx, report)}
}

func (_c *MockUI_DisplayReport_Call) Run(run func(ctx context.Context, report model.RunReport)) *MockUI_DisplayReport_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.RunReport))
	})
	return _c
}

func (_c *MockUI_DisplayReport_Call) Return(_a0 error) *MockUI_DisplayReport_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUI_DisplayReport_Call) RunAndReturn(run func(context.Context, model.RunReport) error) *MockUI_DisplayReport_Call {
	_c.Call.Return(run)
	return _c
}

// DisplayComparison provides a mock function with given fields: ctx, result
func (_m *MockUI) DisplayComparison(ctx context.Context, result model.ComparisonResult) error {
	ret := _m.Called(ctx, result)

	if len(ret) == 0 {
		panic("no return value specified for DisplayComparison")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.ComparisonResult) error); ok {
		r0 = rf(ctx, result)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_DisplayComparison_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayComparison'
type MockUI_DisplayComparison_Call struct {
	*mock.Call
}

// DisplayComparison is a helper method to define mock.On call
//   - ctx context.Context
//   - result model.ComparisonResult
func (_e *MockUI_Expecter) DisplayComparison(ctx interface{}, result interface{}) *MockUI_DisplayComparison_Call {
	return &MockUI_DisplayComparison_Call{Call: _e.mock.On("DisplayComparison", ctx, result)}
}

func (_c *MockUI_DisplayComparison_Call) Run(run func(ctx context.Context, result model.ComparisonResult)) *MockUI_DisplayComparison_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.ComparisonResult))
	})
	return _c
}

func (_c *MockUI_DisplayComparison_Call) Return(_a0 error) *MockUI_DisplayComparison_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUI_DisplayComparison_Call) RunAndReturn(run func(context.Context, model.ComparisonResult) error) *MockUI_DisplayComparison_Call {
	_c.Call.Return(run)
	return _c
}

// DisplayMatrix provides a mock function with given fields: ctx, entries
func (_m *MockUI) DisplayMatrix(ctx context.Context, entries []controller.MatrixEntry) error {
	ret := _m.Called(ctx, entries)

	if len(ret) == 0 {
		panic("no return value specified for DisplayMatrix")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []controller.MatrixEntry) error); ok {
		r0 = rf(ctx, entries)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_DisplayMatrix_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayMatrix'
type MockUI_DisplayMatrix_Call struct {
	*mock.Call
}

// DisplayMatrix is a helper method to define mock.On call
//   - ctx context.Context
//   - entries []controller.MatrixEntry
func (_e *MockUI_Expecter) DisplayMatrix(ctx interface{}, entries interface{}) *MockUI_DisplayMatrix_Call {
	return &MockUI_DisplayMatrix_Call{Call: _e.mock.On("DisplayMatrix", ctx, entries)}
}

func (_c *MockUI_DisplayMatrix_Call) Run(run func(ctx context.Context, entries []controller.MatrixEntry)) *MockUI_DisplayMatrix_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]controller.MatrixEntry))
	})
	return _c
}

func (_c *MockUI_DisplayMatrix_Call) Return(_a0 error) *MockUI_DisplayMatrix_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUI_DisplayMatrix_Call) RunAndReturn(run func(context.Context, []controller.MatrixEntry) error) *MockUI_DisplayMatrix_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUI creates a new instance of MockUI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mock := &MockUI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
