package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// SubmissionGuard is a mock type for the SubmissionGuard type
type SubmissionGuard struct {
	mock.Mock
}

func (_m *SubmissionGuard) Forget(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *SubmissionGuard) Seen(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, key)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewSubmissionGuard creates a new instance of SubmissionGuard. It also registers a cleanup
// function to assert the mocks expectations.
func NewSubmissionGuard(t interface {
	mock.TestingT
	Cleanup(func())
}) *SubmissionGuard {
	m := &SubmissionGuard{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
