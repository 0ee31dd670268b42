package queries

import (
	"errors"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/guard"
)

var ErrGetDishQueryIsNotConstructed = errors.New(
	"GetDishQuery must be created via NewGetDishQuery constructor",
)

// GetDishQuery reads a single dish by its route id.
type GetDishQuery struct {
	dishID string

	guard guard.ConstructorGuard
}

// NewGetDishQuery rejects blank ids.
func NewGetDishQuery(dishID string) (GetDishQuery, error) {
	if err := kernel.ValidateID(dishID); err != nil {
		return GetDishQuery{}, err
	}

	return GetDishQuery{
		dishID: dishID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

func (q GetDishQuery) DishID() string {
	return q.dishID
}
