package commands_test

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	dishes, _ := args.Get(0).([]*dish.Dish)
	return dishes, args.Error(1)
}

func (m *MockDishRepository) FindByID(ctx context.Context, id string) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) Insert(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Insert(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) RemoveByID(ctx context.Context, id string, precondition ports.RemovePrecondition) error {
	args := m.Called(ctx, id, precondition)
	return args.Error(0)
}

var (
	_ ports.DishRepository  = (*MockDishRepository)(nil)
	_ ports.OrderRepository = (*MockOrderRepository)(nil)
)
