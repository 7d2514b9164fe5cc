package mocks

import (
	"context"
	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// PopularityCache is a mock type for the PopularityCache type
type PopularityCache struct {
	mock.Mock
}

func (_m *PopularityCache) TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error) {
	ret := _m.Called(ctx, day, limit)

	var r0 []domain.PopularItem
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []domain.PopularItem); ok {
		r0 = rf(ctx, day, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularItem)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, day, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewPopularityCache creates a new instance of PopularityCache. It also registers a cleanup
// function to assert the mocks expectations.
func NewPopularityCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *PopularityCache {
	m := &PopularityCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
