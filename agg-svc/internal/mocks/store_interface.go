package mocks

import (
	"context"
	"fusion-kitchen/agg-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) RecordOrderCompleted(ctx context.Context, day string) error {
	ret := _m.Called(ctx, day)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, day)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *StoreInterface) RecordOrderCreated(ctx context.Context, day string, items []domain.EventItem) error {
	ret := _m.Called(ctx, day, items)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []domain.EventItem) error); ok {
		r0 = rf(ctx, day, items)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a cleanup
// function to assert the mocks expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
