package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

type GetOrderBacklogQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewGetOrderBacklogQueryHandler(orderRepo ports.OrderRepository) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{orderRepo: orderRepo}
}

func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) (GetOrderBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	orders, err := h.orderRepo.List(ctx)
	if err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	counts := make(map[order.Status]int, len(order.Statuses()))
	for _, s := range order.Statuses() {
		counts[s] = 0
	}
	for _, o := range orders {
		counts[o.Status()]++
	}

	return GetOrderBacklogQueryResponse{Counts: counts, Total: len(orders)}, nil
}
