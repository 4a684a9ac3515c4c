package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	domain "kmeroracle.dev/pkg/kmeroracle/internal/domain"
	model "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// MockOrchestrator is a mock type for the Orchestrator type
type MockOrchestrator struct {
	mock.Mock
}

type MockOrchestrator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrchestrator) EXPECT() *MockOrchestrator_Expecter {
	return &MockOrchestrator_Expecter{mock: &_m.Mock}
}

// Build provides a mock function with given fields: ctx, req
func (_m *MockOrchestrator) Build(ctx context.Context, req domain.BuildRequest) (model.IndexArtifact, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Build")
	}

	var r0 model.IndexArtifact
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.BuildRequest) (model.IndexArtifact, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.BuildRequest) model.IndexArtifact); ok {
		r0 = rf(ctx, req)
	} else {
		r0 = ret.Get(0).(model.IndexArtifact)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.BuildRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrchestrator_Build_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Build'
type MockOrchestrator_Build_Call struct {
	*mock.Call
}

// Build is a helper method to define mock.On call
//   - ctx context.Context
//   - req domain.BuildRequest
func (_e *MockOrchestrator_Expecter) Build(ctx interface{}, req interface{}) *MockOrchestrator_Build_Call {
	return &MockOrchestrator_Build_Call{Call: _e.mock.On("Build", ctx, req)}
}

func (_c *MockOrchestrator_Build_Call) Run(run func(ctx context.Context, req domain.BuildRequest)) *MockOrchestrator_Build_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.BuildRequest))
	})
	return _c
}

func (_c *MockOrchestrator_Build_Call) Return(_a0 model.IndexArtifact, _a1 error) *MockOrchestrator_Build_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrchestrator_Build_Call) RunAndReturn(run func(context.Context, domain.BuildRequest) (model.IndexArtifact, error)) *MockOrchestrator_Build_Call {
	_c.Call.Return(run)
	return _c
}

// Dump provides a mock function with given fields: ctx, index, name
func (_m *MockOrchestrator) Dump(ctx context.Context, index model.IndexArtifact, name string) (model.DumpArtifact, error) {
	ret := _m.Called(ctx, index, name)

	if len(ret) == 0 {
		panic("no return value specified for Dump")
	}

	var r0 model.DumpArtifact
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.IndexArtifact, string) (model.DumpArtifact, error)); ok {
		return rf(ctx, index, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.IndexArtifact, string) model.DumpArtifact); ok {
		r0 = rf(ctx, index, name)
	} else {
		r0 = ret.Get(0).(model.DumpArtifact)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.IndexArtifact, string) error); ok {
		r1 = rf(ctx, index, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrchestrator_Dump_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Dump'
type MockOrchestrator_Dump_Call struct {
	*mock.Call
}

// Dump is a helper method to define mock.On call
//   - ctx context.Context
//   - index model.IndexArtifact
//   - name string
func (_e *MockOrchestrator_Expecter) Dump(ctx interface{}, index interface{}, name interface{}) *MockOrchestrator_Dump_Call {
	return &MockOrchestrator_Dump_Call{Call: _e.mock.On("Dump", ctx, index, name)}
}

func (_c *MockOrchestrator_Dump_Call) Run(run func(ctx context.Context, index model.IndexArtifact, name string)) *MockOrchestrator_Dump_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.IndexArtifact), args[2].(string))
	})
	return _c
}

func (_c *MockOrchestrator_Dump_Call) Return(_a0 model.DumpArtifact, _a1 error) *MockOrchestrator_Dump_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrchestrator_Dump_Call) RunAndReturn(run func(context.Context, model.IndexArtifact, string) (model.DumpArtifact, error)) *MockOrchestrator_Dump_Call {
	_c.Call.Return(run)
	return _c
}

// Pseudoalign provides a mock function with given fields: ctx, index, query, row, opts, name
func (_m *MockOrchestrator) Pseudoalign(ctx context.Context, index model.IndexArtifact, query model.Path, row model.QueryParameterRow, opts model.QueryOptions, name string) (model.DumpArtifact, error) {
	ret := _m.Called(ctx, index, query, row, opts, name)

	if len(ret) == 0 {
		panic("no return value specified for Pseudoalign")
	}

	var r0 model.DumpArtifact
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.IndexArtifact, model.Path, model.QueryParameterRow, model.QueryOptions, string) (model.DumpArtifact, error)); ok {
		return rf(ctx, index, query, row, opts, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.IndexArtifact, model.Path, model.QueryParameterRow, model.QueryOptions, string) model.DumpArtifact); ok {
		r0 = rf(ctx, index, query, row, opts, name)
	} else {
		r0 = ret.Get(0).(model.DumpArtifact)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.IndexArtifact, model.Path, model.QueryParameterRow, model.QueryOptions, string) error); ok {
		r1 = rf(ctx, index, query, row, opts, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrchestrator_Pseudoalign_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Pseudoalign'
type MockOrchestrator_Pseudoalign_Call struct {
	*mock.Call
}

// Pseudoalign is a helper method to define mock.On call
//   - ctx context.Context
//   - index model.IndexArtifact
//   - query model.Path
//   - row model.QueryParameterRow
//   - opts model.QueryOptions
//   - name string
func (_e *MockOrchestrator_Expecter) Pseudoalign(ctx interface{}, index interface{}, query interface{}, row interface{}, opts interface{}, name interface{}) *MockOrchestrator_Pseudoalign_Call {
	return &MockOrchestrator_Pseudoalign_Call{Call: _e.mock.On("Pseudoalign", ctx, index, query, row, opts, name)}
}

func (_c *MockOrchestrator_Pseudoalign_Call) Run(run func(ctx context.Context, index model.IndexArtifact, query model.Path, row model.QueryParameterRow, opts model.QueryOptions, name string)) *MockOrchestrator_Pseudoalign_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.IndexArtifact), args[2].(model.Path), args[3].(model.QueryParameterRow), args[4].(model.QueryOptions), args[5].(string))
	})
	return _c
}

func (_c *MockOrchestrator_Pseudoalign_Call) Return(_a0 model.DumpArtifact, _a1 error) *MockOrchestrator_Pseudoalign_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrchestrator_Pseudoalign_Call) RunAndReturn(run func(context.Context, model.IndexArtifact, model.Path, model.QueryParameterRow, model.QueryOptions, string) (model.DumpArtifact, error)) *MockOrchestrator_Pseudoalign_Call {
	_c.Call.Return(run)
	return _c
}

// ReferenceDump provides a mock function with given fields: ctx, cfg, fx, name
func (_m *MockOrchestrator) ReferenceDump(ctx context.Context, cfg model.BuildConfiguration, fx domain.Fixtures, name string) (model.DumpArtifact, error) {
	ret := _m.Called(ctx, cfg, fx, name)

	if len(ret) == 0 {
		panic("no return value specified for ReferenceDump")
	}

	var r0 model.DumpArtifact
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.BuildConfiguration, domain.Fixtures, string) (model.DumpArtifact, error)); ok {
		return rf(ctx, cfg, fx, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.BuildConfiguration, domain.Fixtures, string) model.DumpArtifact); ok {
		r0 = rf(ctx, cfg, fx, name)
	} else {
		r0 = ret.Get(0).(model.DumpArtifact)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.BuildConfiguration, domain.Fixtures, string) error); ok {
		r1 = rf(ctx, cfg, fx, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrchestrator_ReferenceDump_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReferenceDump'
type MockOrchestrator_ReferenceDump_Call struct {
	*mock.Call
}

// ReferenceDump is a helper method to define mock.On call
//   - ctx context.Context
//   - cfg model.BuildConfiguration
//   - fx domain.Fixtures
//   - name string
func (_e *MockOrchestrator_Expecter) ReferenceDump(ctx interface{}, cfg interface{}, fx interface{}, name interface{}) *MockOrchestrator_ReferenceDump_Call {
	return &MockOrchestrator_ReferenceDump_Call{Call: _e.mock.On("ReferenceDump", ctx, cfg, fx, name)}
}

func (_c *MockOrchestrator_ReferenceDump_Call) Run(run func(ctx context.Context, cfg model.BuildConfiguration, fx domain.Fixtures, name string)) *MockOrchestrator_ReferenceDump_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.BuildConfiguration), args[2].(domain.Fixtures), args[3].(string))
	})
	return _c
}

func (_c *MockOrchestrator_ReferenceDump_Call) Return(_a0 model.DumpArtifact, _a1 error) *MockOrchestrator_ReferenceDump_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrchestrator_ReferenceDump_Call) RunAndReturn(run func(context.Context, model.BuildConfiguration, domain.Fixtures, string) (model.DumpArtifact, error)) *MockOrchestrator_ReferenceDump_Call {
	_c.Call.Return(run)
	return _c
}

// ReferenceQuery provides a mock function with given fields: ctx, cfg, fx, query, row, name
func (_m *MockOrchestrator) ReferenceQuery(ctx context.Context, cfg model.BuildConfiguration, fx domain.Fixtures, query model.Path, row model.QueryParameterRow, name string) (model.DumpArtifact, error) {
	ret := _m.Called(ctx, cfg, fx, query, row, name)

	if len(ret) == 0 {
		panic("no return value specified for ReferenceQuery")
	}

	var r0 model.DumpArtifact
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.BuildConfiguration, domain.Fixtures, model.Path, model.QueryParameterRow, string) (model.DumpArtifact, error)); ok {
		return rf(ctx, cfg, fx, query, row, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.BuildConfiguration, domain.Fixtures, model.Path, model.QueryParameterRow, string) model.DumpArtifact); ok {
		r0 = rf(ctx, cfg, fx, query, row, name)
	} else {
		r0 = ret.Get(0).(model.DumpArtifact)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.BuildConfiguration, domain.Fixtures, model.Path, model.QueryParameterRow, string) error); ok {
		r1 = rf(ctx, cfg, fx, query, row, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrchestrator_ReferenceQuery_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReferenceQuery'
type MockOrchestrator_ReferenceQuery_Call struct {
	*mock.Call
}

// ReferenceQuery is a helper method to define mock.On call
//   - ctx context.Context
//   - cfg model.BuildConfiguration
//   - fx domain.Fixtures
//   - query model.Path
//   - row model.QueryParameterRow
//   - name string
func (_e *MockOrchestrator_Expecter) ReferenceQuery(ctx interface{}, cfg interface{}, fx interface{}, query interface{}, row interface{}, name interface{}) *MockOrchestrator_ReferenceQuery_Call {
	return &MockOrchestrator_ReferenceQuery_Call{Call: _e.mock.On("ReferenceQuery", ctx, cfg, fx, query, row, name)}
}

func (_c *MockOrchestrator_ReferenceQuery_Call) Run(run func(ctx context.Context, cfg model.BuildConfiguration, fx domain.Fixtures, query model.Path, row model.QueryParameterRow, name string)) *MockOrchestrator_ReferenceQuery_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.BuildConfiguration), args[2].(domain.Fixtures), args[3].(model.Path), args[4].(model.QueryParameterRow), args[5].(string))
	})
	return _c
}

func (_c *MockOrchestrator_ReferenceQuery_Call) Return(_a0 model.DumpArtifact, _a1 error) *MockOrchestrator_ReferenceQuery_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrchestrator_ReferenceQuery_Call) RunAndReturn(run func(context.Context, model.BuildConfiguration, domain.Fixtures, model.Path, model.QueryParameterRow, string) (model.DumpArtifact, error)) *MockOrchestrator_ReferenceQuery_Call {
	_c.Call.Return(run)
	return _c
}

// RoundTrip provides a mock function with given fields: ctx, cfg, fx, namespace
func (_m *MockOrchestrator) RoundTrip(ctx context.Context, cfg model.BuildConfiguration, fx domain.Fixtures, namespace string) (domain.DumpPair, error) {
	ret := _m.Called(ctx, cfg, fx, namespace)

	if len(ret) == 0 {
		panic("no return value specified for RoundTrip")
	}

	var r0 domain.DumpPair
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.BuildConfiguration, domain.Fixtures, string) (domain.DumpPair, error)); ok {
		return rf(ctx, cfg, fx, namespace)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.BuildConfiguration, domain.Fixtures, string) domain.DumpPair); ok {
		r0 = rf(ctx, cfg, fx, namespace)
	} else {
		r0 = ret.Get(0).(domain.DumpPair)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.BuildConfiguration, domain.Fixtures, string) error); ok {
		r1 = rf(ctx, cfg, fx, namespace)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrchestrator_RoundTrip_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RoundTrip'
type MockOrchestrator_RoundTrip_Call struct {
	*mock.Call
}

// RoundTrip is a helper method to define mock.On call
//   - ctx context.Context
//   - cfg model.BuildConfiguration
//   - fx domain.Fixtures
//   - namespace string
func (_e *MockOrchestrator_Expecter) RoundTrip(ctx interface{}, cfg interface{}, fx interface{}, namespace interface{}) *MockOrchestrator_RoundTrip_Call {
	return &MockOrchestrator_RoundTrip_Call{Call: _e.mock.On("RoundTrip", ctx, cfg, fx, namespace)}
}

func (_c *MockOrchestrator_RoundTrip_Call) Run(run func(ctx context.Context, cfg model.BuildConfiguration, fx domain.Fixtures, namespace string)) *MockOrchestrator_RoundTrip_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.BuildConfiguration), args[2].(domain.Fixtures), args[3].(string))
	})
	return _c
}

func (_c *MockOrchestrator_RoundTrip_Call) Return(_a0 domain.DumpPair, _a1 error) *MockOrchestrator_RoundTrip_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrchestrator_RoundTrip_Call) RunAndReturn(run func(context.Context, model.BuildConfiguration, domain.Fixtures, string) (domain.DumpPair, error)) *MockOrchestrator_RoundTrip_Call {
	_c.Call.Return(run)
	return _c
}

// RunRow provides a mock function with given fields: ctx, row, fx
func (_m *MockOrchestrator) RunRow(ctx context.Context, row domain.MatrixRow, fx domain.Fixtures) ([]domain.DumpPair, error) {
	ret := _m.Called(ctx, row, fx)

	if len(ret) == 0 {
		panic("no return value specified for RunRow")
	}

	var r0 []domain.DumpPair
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.MatrixRow, domain.Fixtures) ([]domain.DumpPair, error)); ok {
		return rf(ctx, row, fx)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.MatrixRow, domain.Fixtures) []domain.DumpPair); ok {
		r0 = rf(ctx, row, fx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.DumpPair)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.MatrixRow, domain.Fixtures) error); ok {
		r1 = rf(ctx, row, fx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrchestrator_RunRow_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RunRow'
type MockOrchestrator_RunRow_Call struct {
	*mock.Call
}

// RunRow is a helper method to define mock.On call
//   - ctx context.Context
//   - row domain.MatrixRow
//   - fx domain.Fixtures
func (_e *MockOrchestrator_Expecter) RunRow(ctx interface{}, row interface{}, fx interface{}) *MockOrchestrator_RunRow_Call {
	return &MockOrchestrator_RunRow_Call{Call: _e.mock.On("RunRow", ctx, row, fx)}
}

func (_c *MockOrchestrator_RunRow_Call) Run(run func(ctx context.Context, row domain.MatrixRow, fx domain.Fixtures)) *MockOrchestrator_RunRow_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.MatrixRow), args[2].(domain.Fixtures))
	})
	return _c
}

func (_c *MockOrchestrator_RunRow_Call) Return(_a0 []domain.DumpPair, _a1 error) *MockOrchestrator_RunRow_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrchestrator_RunRow_Call) RunAndReturn(run func(context.Context, domain.MatrixRow, domain.Fixtures) ([]domain.DumpPair, error)) *MockOrchestrator_RunRow_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockOrchestrator creates a new instance of MockOrchestrator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOrchestrator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrchestrator {
	mock := &MockOrchestrator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
