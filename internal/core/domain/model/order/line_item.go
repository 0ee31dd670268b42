package order

import (
	"fmt"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

// LineItem pairs a dish reference with a quantity. The dish id is not
// checked against the dish collection. Fields holds the object the client
// sent for this item, kept verbatim so embedded dish details survive.
type LineItem struct {
	dishID   string
	quantity int
	fields   map[string]any
}

// LineItemPayload is a client's proposed line item. Quantity keeps the raw
// decoded JSON value, Fields the whole decoded object.
type LineItemPayload struct {
	DishID   string
	Quantity any
	Fields   map[string]any
}

// NewQuantityIsInvalidError reports the line item at index.
func NewQuantityIsInvalidError(index int) *errs.ValidationError {
	return errs.NewValidationError(
		fmt.Sprintf("Dish %d must have a quantity that is an integer greater than 0", index),
	)
}

// NewLineItem builds a line item, validating the quantity.
func NewLineItem(dishID string, quantity int) (LineItem, error) {
	return RestoreLineItem(dishID, quantity, nil)
}

// RestoreLineItem rebuilds a line item read back from persistence, client
// fields included.
func RestoreLineItem(dishID string, quantity int, fields map[string]any) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return LineItem{dishID: dishID, quantity: quantity, fields: cloneFields(fields)}, nil
}

func (li LineItem) DishID() string { return li.dishID }
func (li LineItem) Quantity() int  { return li.quantity }

// Fields returns a copy of the client's line item object, or nil when the
// item was built without one.
func (li LineItem) Fields() map[string]any {
	return cloneFields(li.fields)
}

func lineItemsFrom(payloads []LineItemPayload) []LineItem {
	items := make([]LineItem, 0, len(payloads))
	for _, p := range payloads {
		quantity, _ := kernel.PositiveInteger(p.Quantity)
		items = append(items, LineItem{dishID: p.DishID, quantity: quantity, fields: cloneFields(p.Fields)})
	}
	return items
}

func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneFields(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
