package mocks

import (
	"context"
	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CompleteAllItems(ctx context.Context, orderID domain.UUID) error {
	ret := _m.Called(ctx, orderID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID) error); ok {
		r0 = rf(ctx, orderID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, locationID domain.UUID, req domain.NewOrder) (*domain.CreatedOrder, error) {
	ret := _m.Called(ctx, locationID, req)

	var r0 *domain.CreatedOrder
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID, domain.NewOrder) *domain.CreatedOrder); ok {
		r0 = rf(ctx, locationID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.CreatedOrder)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UUID, domain.NewOrder) error); ok {
		r1 = rf(ctx, locationID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderRepository) FirstLocationID(ctx context.Context) (domain.UUID, error) {
	ret := _m.Called(ctx)

	var r0 domain.UUID
	if rf, ok := ret.Get(0).(func(context.Context) domain.UUID); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.UUID)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderRepository) GetOrder(ctx context.Context, id domain.UUID) (*domain.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID) *domain.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderRepository) ListItemIDs(ctx context.Context, orderID domain.UUID) ([]domain.UUID, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []domain.UUID
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID) []domain.UUID); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.UUID)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UUID) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderRepository) ListItemStatuses(ctx context.Context, orderID domain.UUID) ([]domain.ItemStatus, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []domain.ItemStatus
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID) []domain.ItemStatus); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ItemStatus)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UUID) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, domain.OrderFilter) []domain.Order); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.OrderFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderRepository) OverrideStatus(ctx context.Context, orderID domain.UUID, status domain.OrderStatus) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID, status)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID, domain.OrderStatus) *domain.Order); ok {
		r0 = rf(ctx, orderID, status)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UUID, domain.OrderStatus) error); ok {
		r1 = rf(ctx, orderID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderRepository) SetDerivedStatus(ctx context.Context, orderID domain.UUID, status domain.OrderStatus) error {
	ret := _m.Called(ctx, orderID, status)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID, domain.OrderStatus) error); ok {
		r0 = rf(ctx, orderID, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *OrderRepository) UpdateItemStatus(ctx context.Context, orderID domain.UUID, itemID domain.UUID, status domain.ItemStatus, stamps domain.Stamps) (*domain.OrderItem, error) {
	ret := _m.Called(ctx, orderID, itemID, status, stamps)

	var r0 *domain.OrderItem
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID, domain.UUID, domain.ItemStatus, domain.Stamps) *domain.OrderItem); ok {
		r0 = rf(ctx, orderID, itemID, status, stamps)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.OrderItem)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UUID, domain.UUID, domain.ItemStatus, domain.Stamps) error); ok {
		r1 = rf(ctx, orderID, itemID, status, stamps)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderRepository) UpdateTicketStatus(ctx context.Context, itemID domain.UUID, stationID domain.UUID, status domain.TicketStatus, stamps domain.Stamps) (int64, error) {
	ret := _m.Called(ctx, itemID, stationID, status, stamps)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID, domain.UUID, domain.TicketStatus, domain.Stamps) int64); ok {
		r0 = rf(ctx, itemID, stationID, status, stamps)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UUID, domain.UUID, domain.TicketStatus, domain.Stamps) error); ok {
		r1 = rf(ctx, itemID, stationID, status, stamps)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
