package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

type ListDishesQueryHandler struct {
	dishRepo ports.DishRepository
}

func NewListDishesQueryHandler(dishRepo ports.DishRepository) ListDishesQueryHandler {
	return ListDishesQueryHandler{dishRepo: dishRepo}
}

// Handle returns every dish in store order. An empty menu yields an empty,
// non-nil slice.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.dishRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if dishes == nil {
		dishes = make([]*dish.Dish, 0)
	}

	return dishes, nil
}
