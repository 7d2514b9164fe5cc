package mocks

import (
	"context"
	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Recommender is a mock type for the Recommender type
type Recommender struct {
	mock.Mock
}

func (_m *Recommender) Recommend(ctx context.Context) ([]domain.ShoppingListItem, error) {
	ret := _m.Called(ctx)

	var r0 []domain.ShoppingListItem
	if rf, ok := ret.Get(0).(func(context.Context) []domain.ShoppingListItem); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ShoppingListItem)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewRecommender creates a new instance of Recommender. It also registers a cleanup
// function to assert the mocks expectations.
func NewRecommender(t interface {
	mock.TestingT
	Cleanup(func())
}) *Recommender {
	m := &Recommender{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
