package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/pipeline"
)

// UpdateOrderCommandHandler overwrites an order in place.
//
// Steps, first failure wins: order exists, payload valid, status guard,
// payload id matches the route, apply, persist.
type UpdateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewUpdateOrderCommandHandler creates a handler backed by the order store.
func NewUpdateOrderCommandHandler(orderRepo ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{orderRepo: orderRepo}
}

// Handle returns the updated order.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	payload := cmd.Payload()
	var found *order.Order
	err := pipeline.Run(ctx,
		func(ctx context.Context) (err error) {
			found, err = h.orderRepo.FindByID(ctx, cmd.OrderID())
			return err
		},
		func(context.Context) error { return order.ValidatePayload(payload) },
		func(context.Context) error {
			return found.Status().ValidateChange(order.Status(payload.Status))
		},
		func(context.Context) error { return payload.ValidateRouteID(cmd.OrderID()) },
		func(context.Context) error { return found.Update(payload) },
		func(ctx context.Context) error { return h.orderRepo.Update(ctx, found) },
	)
	if err != nil {
		return nil, err
	}

	return found, nil
}
