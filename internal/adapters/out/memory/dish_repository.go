package memory

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
)

// DishRepository implements ports.DishRepository in memory.
type DishRepository struct {
	dishes *collection[*dish.Dish]
}

// NewDishRepository creates an empty dish store. A nil generator falls back
// to kernel.NewID.
func NewDishRepository(nextID kernel.IDGenerator) *DishRepository {
	return &DishRepository{dishes: newCollection[*dish.Dish]("dish", nextID)}
}

func (r *DishRepository) List(_ context.Context) ([]*dish.Dish, error) {
	return r.dishes.list(), nil
}

func (r *DishRepository) FindByID(_ context.Context, id string) (*dish.Dish, error) {
	return r.dishes.findByID(id)
}

func (r *DishRepository) Insert(_ context.Context, aggregate *dish.Dish) error {
	return r.dishes.insert(aggregate)
}

func (r *DishRepository) Update(_ context.Context, aggregate *dish.Dish) error {
	return r.dishes.update(aggregate)
}
