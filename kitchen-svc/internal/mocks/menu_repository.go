package mocks

import (
	"context"
	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuRepository is a mock type for the MenuRepository type
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) ListMenuItemSections(ctx context.Context) ([]domain.MenuItemSection, error) {
	ret := _m.Called(ctx)

	var r0 []domain.MenuItemSection
	if rf, ok := ret.Get(0).(func(context.Context) []domain.MenuItemSection); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItemSection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuRepository) ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.MenuItem
	if rf, ok := ret.Get(0).(func(context.Context, domain.MenuFilter) []domain.MenuItem); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.MenuFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuRepository) ListSections(ctx context.Context) ([]domain.Section, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Section
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Section); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Section)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuRepository) ListStations(ctx context.Context, filter domain.StationFilter) ([]domain.Station, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Station
	if rf, ok := ret.Get(0).(func(context.Context, domain.StationFilter) []domain.Station); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Station)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.StationFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMenuRepository creates a new instance of MenuRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
