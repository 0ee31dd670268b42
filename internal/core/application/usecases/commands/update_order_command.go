package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces deliverTo, mobileNumber, status and dishes of
// the order named by the route.
type UpdateOrderCommand struct {
	orderID string
	payload order.Payload

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand requires the route's order id.
func NewUpdateOrderCommand(orderID string, payload order.Payload) (UpdateOrderCommand, error) {
	if err := kernel.ValidateID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the id taken from the route.
func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

// Payload returns the replacement fields.
func (c UpdateOrderCommand) Payload() order.Payload {
	return c.payload
}
