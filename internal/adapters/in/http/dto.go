package http

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrMalformedBody is returned when the request body is not JSON of the
// expected shape.
var ErrMalformedBody = errs.NewValidationError("Request body must be valid JSON with a data object")

// Envelope wraps every request and success response body.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// Error is the body of every failed response.
type Error struct {
	Error string `json:"error"`
}

// Dish is the wire form of a dish in responses.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	ImageURL    string `json:"image_url"`
}

// Order is the wire form of an order in responses. Each dishes element is
// the object the client sent for that line item.
type Order struct {
	ID           string           `json:"id"`
	DeliverTo    string           `json:"deliverTo"`
	MobileNumber string           `json:"mobileNumber"`
	Status       string           `json:"status"`
	Dishes       []map[string]any `json:"dishes"`
}

// DishRequest is the data member of a dish request body. Members are left
// untyped so that a value of the wrong JSON type reaches the rule for its
// field instead of failing the decode.
type DishRequest struct {
	ID          any `json:"id"`
	Name        any `json:"name"`
	Description any `json:"description"`
	Price       any `json:"price"`
	ImageURL    any `json:"image_url"`
}

// OrderRequest is the data member of an order request body. A dishes value
// that is not an array counts as no dishes.
type OrderRequest struct {
	ID           any `json:"id"`
	DeliverTo    any `json:"deliverTo"`
	MobileNumber any `json:"mobileNumber"`
	Status       any `json:"status"`
	Dishes       any `json:"dishes"`
}

func (d DishRequest) payload() dish.Payload {
	return dish.Payload{
		ID:          looseString(d.ID),
		Name:        looseString(d.Name),
		Description: looseString(d.Description),
		Price:       d.Price,
		ImageURL:    looseString(d.ImageURL),
	}
}

func (o OrderRequest) payload() order.Payload {
	return order.Payload{
		ID:           looseString(o.ID),
		DeliverTo:    looseString(o.DeliverTo),
		MobileNumber: looseString(o.MobileNumber),
		Status:       looseString(o.Status),
		Dishes:       lineItemPayloads(o.Dishes),
	}
}

func lineItemPayloads(v any) []order.LineItemPayload {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}

	items := make([]order.LineItemPayload, 0, len(raw))
	for _, elem := range raw {
		fields, ok := elem.(map[string]any)
		if !ok {
			items = append(items, order.LineItemPayload{})
			continue
		}
		items = append(items, order.LineItemPayload{
			DishID:   lineItemDishID(fields),
			Quantity: fields["quantity"],
			Fields:   fields,
		})
	}
	return items
}

// lineItemDishID prefers dishId and falls back to the id of an embedded dish.
func lineItemDishID(fields map[string]any) string {
	if id, ok := fields["dishId"].(string); ok && id != "" {
		return id
	}
	id, _ := fields["id"].(string)
	return id
}

// looseString renders a decoded JSON scalar as text. Null, false, zero and
// the empty string all read as absent.
func looseString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t {
			return ""
		}
		return "true"
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func dishFromDomain(d *dish.Dish) Dish {
	return Dish{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func orderFromDomain(o *order.Order) Order {
	items := o.Dishes()
	dishes := make([]map[string]any, 0, len(items))
	for _, item := range items {
		fields := item.Fields()
		if fields == nil {
			fields = map[string]any{"quantity": item.Quantity()}
			if item.DishID() != "" {
				fields["dishId"] = item.DishID()
			}
		}
		dishes = append(dishes, fields)
	}

	return Order{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}

// decodeData reads a {"data": {...}} body. An empty body or a missing data
// member leaves data at its zero value so validation reports the first
// missing field. Only invalid JSON or a data member that is not an object
// is malformed.
func decodeData[T any](ctx echo.Context) (T, error) {
	var body struct {
		Data *T `json:"data"`
	}
	var zero T

	err := ctx.Echo().JSONSerializer.Deserialize(ctx, &body)
	switch {
	case errors.Is(err, io.EOF):
		return zero, nil
	case err != nil:
		return zero, errs.NewValidationErrorWithCause(ErrMalformedBody.Message, err)
	case body.Data == nil:
		return zero, nil
	}

	return *body.Data, nil
}
