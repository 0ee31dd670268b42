package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/pipeline"
)

// CreateOrderCommandHandler validates a proposed order and inserts it with
// status pending unless the payload names another status.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler backed by the order store.
func NewCreateOrderCommandHandler(orderRepo ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orderRepo: orderRepo}
}

// Handle returns the inserted order with its generated id.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *order.Order
	err := pipeline.Run(ctx,
		func(context.Context) (err error) {
			created, err = order.NewOrder(cmd.Payload())
			return err
		},
		func(ctx context.Context) error {
			return h.orderRepo.Insert(ctx, created)
		},
	)
	if err != nil {
		return nil, err
	}

	return created, nil
}
