package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes a pending order.
type DeleteOrderCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand requires the route's order id.
func NewDeleteOrderCommand(orderID string) (DeleteOrderCommand, error) {
	if err := kernel.ValidateID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the id taken from the route.
func (c DeleteOrderCommand) OrderID() string {
	return c.orderID
}
