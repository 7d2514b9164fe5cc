package mocks

import (
	"context"
	"time"
	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// InventoryRepository is a mock type for the InventoryRepository type
type InventoryRepository struct {
	mock.Mock
}

func (_m *InventoryRepository) ActiveMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)

	var r0 []domain.MenuItem
	if rf, ok := ret.Get(0).(func(context.Context) []domain.MenuItem); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *InventoryRepository) ConsumedItems(ctx context.Context, orderID domain.UUID) ([]domain.ConsumedItem, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []domain.ConsumedItem
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID) []domain.ConsumedItem); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ConsumedItem)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UUID) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *InventoryRepository) IngredientUsage(ctx context.Context, since time.Time) ([]domain.IngredientUsage, error) {
	ret := _m.Called(ctx, since)

	var r0 []domain.IngredientUsage
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) []domain.IngredientUsage); ok {
		r0 = rf(ctx, since)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.IngredientUsage)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, since)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *InventoryRepository) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Ingredient
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Ingredient); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Ingredient)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *InventoryRepository) RecipeLines(ctx context.Context, menuItemID domain.UUID) ([]domain.RecipeLine, error) {
	ret := _m.Called(ctx, menuItemID)

	var r0 []domain.RecipeLine
	if rf, ok := ret.Get(0).(func(context.Context, domain.UUID) []domain.RecipeLine); ok {
		r0 = rf(ctx, menuItemID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RecipeLine)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.UUID) error); ok {
		r1 = rf(ctx, menuItemID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *InventoryRepository) Restock(ctx context.Context, additions []domain.StockAddition) ([]domain.RestockedIngredient, error) {
	ret := _m.Called(ctx, additions)

	var r0 []domain.RestockedIngredient
	if rf, ok := ret.Get(0).(func(context.Context, []domain.StockAddition) []domain.RestockedIngredient); ok {
		r0 = rf(ctx, additions)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RestockedIngredient)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []domain.StockAddition) error); ok {
		r1 = rf(ctx, additions)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *InventoryRepository) SetStock(ctx context.Context, id domain.LegacyID, quantity float64) error {
	ret := _m.Called(ctx, id, quantity)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.LegacyID, float64) error); ok {
		r0 = rf(ctx, id, quantity)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *InventoryRepository) UpdateQuantity(ctx context.Context, id domain.LegacyID, quantity float64) (*domain.StockLevel, error) {
	ret := _m.Called(ctx, id, quantity)

	var r0 *domain.StockLevel
	if rf, ok := ret.Get(0).(func(context.Context, domain.LegacyID, float64) *domain.StockLevel); ok {
		r0 = rf(ctx, id, quantity)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.StockLevel)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.LegacyID, float64) error); ok {
		r1 = rf(ctx, id, quantity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewInventoryRepository creates a new instance of InventoryRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewInventoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *InventoryRepository {
	m := &InventoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
