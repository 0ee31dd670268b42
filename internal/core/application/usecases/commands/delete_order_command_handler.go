package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order if it is still pending. The
// existence check and the pending guard run inside the store's RemoveByID so
// they see the same record.
type DeleteOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewDeleteOrderCommandHandler creates a handler backed by the order store.
func NewDeleteOrderCommandHandler(orderRepo ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orderRepo: orderRepo}
}

// Handle returns an *errs.ObjectNotFoundError for unknown ids and
// order.ErrOrderIsNotPending for orders past pending.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderRepo.RemoveByID(ctx, cmd.OrderID(), (*order.Order).ValidateRemove)
}
