package queries

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts orders per status so the kitchen can see what is
// still waiting.
//
// Example:
//
//	backlog, err := NewGetOrderBacklogQueryHandler(repo).Handle(ctx, NewGetOrderBacklogQuery())
//	fmt.Println(backlog.Open()) // orders not yet delivered
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// GetOrderBacklogQueryResponse holds one counter per known status. Statuses
// with no orders are present with a zero count.
type GetOrderBacklogQueryResponse struct {
	Counts map[order.Status]int
	Total  int
}

// Open returns the number of orders that are not delivered yet.
func (r GetOrderBacklogQueryResponse) Open() int {
	return r.Total - r.Counts[order.Delivered]
}
