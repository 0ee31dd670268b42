package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle returns every order in store order, never nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}

	return orders, nil
}
