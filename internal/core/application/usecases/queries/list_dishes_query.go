package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrListDishesQueryIsNotConstructed = errors.New(
	"ListDishesQuery must be created via NewListDishesQuery constructor",
)

// ListDishesQuery retrieves the whole menu, unfiltered.
//
// Example:
//
//	dishes, err := NewListDishesQueryHandler(repo).Handle(ctx, NewListDishesQuery())
type ListDishesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDishesQuery() ListDishesQuery {
	return ListDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDishesQuery) Validate() error {
	return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
}
