package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

type GetDishQueryHandler struct {
	dishRepo ports.DishRepository
}

func NewGetDishQueryHandler(dishRepo ports.DishRepository) GetDishQueryHandler {
	return GetDishQueryHandler{dishRepo: dishRepo}
}

// Handle returns the dish or an *errs.ObjectNotFoundError.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.dishRepo.FindByID(ctx, query.DishID())
}
