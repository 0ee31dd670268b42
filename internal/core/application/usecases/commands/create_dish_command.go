package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents a request to add a dish to the menu. The
// payload is validated by the handler so that only the first rule violation
// is reported.
//
// Example:
//
//	cmd := NewCreateDishCommand(dish.Payload{Name: "Taco", Description: "x", Price: 5.0, ImageURL: "u"})
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct {
	payload dish.Payload

	guard guard.ConstructorGuard
}

// NewCreateDishCommand wraps a proposed dish.
func NewCreateDishCommand(payload dish.Payload) CreateDishCommand {
	return CreateDishCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Payload returns the proposed dish.
func (c CreateDishCommand) Payload() dish.Payload {
	return c.payload
}
