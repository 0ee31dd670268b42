package commands

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/pipeline"
)

// CreateDishCommandHandler validates a proposed dish and inserts it.
type CreateDishCommandHandler struct {
	dishRepo ports.DishRepository
}

// NewCreateDishCommandHandler creates a handler backed by the dish store.
func NewCreateDishCommandHandler(dishRepo ports.DishRepository) CreateDishCommandHandler {
	return CreateDishCommandHandler{dishRepo: dishRepo}
}

// Handle returns the inserted dish with its generated id.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *dish.Dish
	err := pipeline.Run(ctx,
		func(context.Context) (err error) {
			created, err = dish.NewDish(cmd.Payload())
			return err
		},
		func(ctx context.Context) error {
			return h.dishRepo.Insert(ctx, created)
		},
	)
	if err != nil {
		return nil, err
	}

	return created, nil
}
