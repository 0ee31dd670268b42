package ports

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// RemovePrecondition decides whether a record may be removed. A non-nil error
// aborts the removal and is returned to the caller unchanged.
type RemovePrecondition func(aggregate *order.Order) error

// OrderRepository holds the order collection.
type OrderRepository interface {
	// List returns every order in insertion order, unfiltered.
	List(ctx context.Context) ([]*order.Order, error)

	// FindByID returns the order with the matching id or an
	// *errs.ObjectNotFoundError.
	FindByID(ctx context.Context, id string) (*order.Order, error)

	// Insert assigns a freshly generated id and appends the order.
	Insert(ctx context.Context, aggregate *order.Order) error

	// Update persists changes made in place to an order obtained from FindByID.
	Update(ctx context.Context, aggregate *order.Order) error

	// RemoveByID removes the order if precondition accepts it. Unknown ids
	// yield an *errs.ObjectNotFoundError.
	//
	// Example:
	//
	//	err := repo.RemoveByID(ctx, id, (*order.Order).ValidateRemove)
	RemoveByID(ctx context.Context, id string, precondition RemovePrecondition) error
}
