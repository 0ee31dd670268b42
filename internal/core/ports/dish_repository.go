// Package ports defines the Resource Store contracts the use cases depend on.
// Implementations live under internal/adapters/out and can be swapped without
// touching validators or use cases.
package ports

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

// DishRepository holds the dish collection. Dishes are never removed.
type DishRepository interface {
	// List returns every dish in insertion order, unfiltered.
	List(ctx context.Context) ([]*dish.Dish, error)

	// FindByID returns the dish with the matching id or an
	// *errs.ObjectNotFoundError. Implementations backed by memory return the
	// stored record itself, so in-place changes are visible to later reads.
	FindByID(ctx context.Context, id string) (*dish.Dish, error)

	// Insert assigns a freshly generated id and appends the dish. It fails only
	// if id generation or the backing store fails.
	Insert(ctx context.Context, aggregate *dish.Dish) error

	// Update persists changes made in place to a dish obtained from FindByID.
	Update(ctx context.Context, aggregate *dish.Dish) error
}
