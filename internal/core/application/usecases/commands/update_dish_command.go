package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand replaces every mutable field of the dish named by the route.
type UpdateDishCommand struct {
	dishID  string
	payload dish.Payload

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand requires the route's dish id.
func NewUpdateDishCommand(dishID string, payload dish.Payload) (UpdateDishCommand, error) {
	if err := kernel.ValidateID(dishID); err != nil {
		return UpdateDishCommand{}, err
	}

	return UpdateDishCommand{
		dishID:  dishID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// DishID returns the id taken from the route.
func (c UpdateDishCommand) DishID() string {
	return c.dishID
}

// Payload returns the replacement fields.
func (c UpdateDishCommand) Payload() dish.Payload {
	return c.payload
}
