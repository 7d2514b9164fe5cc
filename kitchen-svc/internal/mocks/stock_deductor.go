package mocks

import (
	"context"
	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// StockDeductor is a mock type for the StockDeductor type
type StockDeductor struct {
	mock.Mock
}

func (_m *StockDeductor) DeductForOrder(ctx context.Context, orderID domain.UUID) {
	_m.Called(ctx, orderID)
}

// NewStockDeductor creates a new instance of StockDeductor. It also registers a cleanup
// function to assert the mocks expectations.
func NewStockDeductor(t interface {
	mock.TestingT
	Cleanup(func())
}) *StockDeductor {
	m := &StockDeductor{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
