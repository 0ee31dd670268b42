package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer placing an order.
//
// Example:
//
//	cmd := NewCreateOrderCommand(order.Payload{
//	    DeliverTo:    "123 Main",
//	    MobileNumber: "555-1212",
//	    Dishes:       []order.LineItemPayload{{DishID: tacoID, Quantity: 2.0}},
//	})
//	created, err := handler.Handle(ctx, cmd) // created.Status() == order.Pending
type CreateOrderCommand struct {
	payload order.Payload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand wraps a proposed order.
func NewCreateOrderCommand(payload order.Payload) CreateOrderCommand {
	return CreateOrderCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Payload returns the proposed order.
func (c CreateOrderCommand) Payload() order.Payload {
	return c.payload
}
