package orderrepo

import (
	"encoding/json"
	"testing"

	"grubdash/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDTO_KeepsLineItemFieldsThroughJSON(t *testing.T) {
	fields := map[string]any{"id": "d1", "name": "Taco", "price": float64(5), "quantity": float64(2)}
	o, err := order.NewOrder(order.Payload{
		DeliverTo:    "123 Main",
		MobileNumber: "555-1212",
		Dishes:       []order.LineItemPayload{{DishID: "d1", Quantity: float64(2), Fields: fields}},
	})
	require.NoError(t, err)
	require.NoError(t, o.AssignID("order-1"))

	raw, err := json.Marshal(fromDomain(o).Dishes)
	require.NoError(t, err)

	var dishes []LineItemDTO
	require.NoError(t, json.Unmarshal(raw, &dishes))
	restored, err := toDomain(OrderDTO{
		ID:           "order-1",
		DeliverTo:    "123 Main",
		MobileNumber: "555-1212",
		Status:       "pending",
		Dishes:       dishes,
	})

	require.NoError(t, err)
	require.Len(t, restored.Dishes(), 1)
	assert.Equal(t, "d1", restored.Dishes()[0].DishID())
	assert.Equal(t, 2, restored.Dishes()[0].Quantity())
	assert.Equal(t, fields, restored.Dishes()[0].Fields())
}
