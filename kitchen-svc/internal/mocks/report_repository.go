package mocks

import (
	"context"
	"time"
	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ReportRepository is a mock type for the ReportRepository type
type ReportRepository struct {
	mock.Mock
}

func (_m *ReportRepository) FinancialReport(ctx context.Context, since time.Time) (*domain.FinancialReport, error) {
	ret := _m.Called(ctx, since)

	var r0 *domain.FinancialReport
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) *domain.FinancialReport); ok {
		r0 = rf(ctx, since)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.FinancialReport)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, since)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *ReportRepository) InventoryReport(ctx context.Context, since time.Time) (*domain.InventoryReport, error) {
	ret := _m.Called(ctx, since)

	var r0 *domain.InventoryReport
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) *domain.InventoryReport); ok {
		r0 = rf(ctx, since)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.InventoryReport)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, since)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *ReportRepository) MenuItemNames(ctx context.Context, ids []domain.UUID) (map[domain.UUID]string, error) {
	ret := _m.Called(ctx, ids)

	var r0 map[domain.UUID]string
	if rf, ok := ret.Get(0).(func(context.Context, []domain.UUID) map[domain.UUID]string); ok {
		r0 = rf(ctx, ids)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[domain.UUID]string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []domain.UUID) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *ReportRepository) PopularItemsSince(ctx context.Context, since time.Time, limit int) ([]domain.PopularItem, error) {
	ret := _m.Called(ctx, since, limit)

	var r0 []domain.PopularItem
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, int) []domain.PopularItem); ok {
		r0 = rf(ctx, since, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularItem)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time, int) error); ok {
		r1 = rf(ctx, since, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewReportRepository creates a new instance of ReportRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewReportRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportRepository {
	m := &ReportRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
