package commands

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/pipeline"
)

// UpdateDishCommandHandler overwrites a dish in place.
//
// Steps, first failure wins: dish exists, payload valid, payload id matches
// the route, apply, persist.
type UpdateDishCommandHandler struct {
	dishRepo ports.DishRepository
}

// NewUpdateDishCommandHandler creates a handler backed by the dish store.
func NewUpdateDishCommandHandler(dishRepo ports.DishRepository) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{dishRepo: dishRepo}
}

// Handle returns the updated dish.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	payload := cmd.Payload()
	var found *dish.Dish
	err := pipeline.Run(ctx,
		func(ctx context.Context) (err error) {
			found, err = h.dishRepo.FindByID(ctx, cmd.DishID())
			return err
		},
		func(context.Context) error { return dish.ValidatePayload(payload) },
		func(context.Context) error { return payload.ValidateRouteID(cmd.DishID()) },
		func(context.Context) error { return found.Update(payload) },
		func(ctx context.Context) error { return h.dishRepo.Update(ctx, found) },
	)
	if err != nil {
		return nil, err
	}

	return found, nil
}
