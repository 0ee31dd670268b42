package memory

import (
	"context"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// OrderRepository implements ports.OrderRepository in memory.
type OrderRepository struct {
	orders *collection[*order.Order]
}

// NewOrderRepository creates an empty order store. A nil generator falls
// back to kernel.NewID.
func NewOrderRepository(nextID kernel.IDGenerator) *OrderRepository {
	return &OrderRepository{orders: newCollection[*order.Order]("order", nextID)}
}

func (r *OrderRepository) List(_ context.Context) ([]*order.Order, error) {
	return r.orders.list(), nil
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*order.Order, error) {
	return r.orders.findByID(id)
}

func (r *OrderRepository) Insert(_ context.Context, aggregate *order.Order) error {
	return r.orders.insert(aggregate)
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	return r.orders.update(aggregate)
}

func (r *OrderRepository) RemoveByID(_ context.Context, id string, precondition ports.RemovePrecondition) error {
	return r.orders.removeByID(id, precondition)
}
