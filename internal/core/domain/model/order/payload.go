package order

import (
	"fmt"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/pipeline"
)

var (
	ErrDeliverToIsRequired    = errs.NewValidationError("Order must include a deliverTo")
	ErrMobileNumberIsRequired = errs.NewValidationError("Order must include a mobileNumber")
	ErrDishesAreRequired      = errs.NewValidationError("Order must include at least one dish")
)

// Payload is a client's proposed order. An empty Status means the client did
// not send one.
type Payload struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Status       string
	Dishes       []LineItemPayload
}

// ValidatePayload checks the field rules in order and returns the first
// violation. Every line item is scanned, and the lowest failing index is
// reported.
func ValidatePayload(p Payload) error {
	return pipeline.First(
		func() error {
			if !kernel.IsPresent(p.DeliverTo) {
				return ErrDeliverToIsRequired
			}
			return nil
		},
		func() error {
			if !kernel.IsPresent(p.MobileNumber) {
				return ErrMobileNumberIsRequired
			}
			return nil
		},
		func() error {
			if !kernel.Satisfies(p.Dishes, "required,min=1") {
				return ErrDishesAreRequired
			}
			return nil
		},
		func() error { return validateQuantities(p.Dishes) },
	)
}

func validateQuantities(items []LineItemPayload) error {
	for i, item := range items {
		if _, ok := kernel.PositiveInteger(item.Quantity); !ok {
			return NewQuantityIsInvalidError(i)
		}
	}
	return nil
}

// ValidateRouteID rejects a payload whose id names a different order than the
// route. An empty payload id always matches.
func (p Payload) ValidateRouteID(routeID string) error {
	if p.ID != "" && p.ID != routeID {
		return errs.NewValidationError(
			fmt.Sprintf("Order id does not match route id. Order: %s, Route: %s", p.ID, routeID),
		)
	}
	return nil
}

// RequestedStatus returns the status the client asked for, or fallback when
// none was sent.
func (p Payload) RequestedStatus(fallback Status) (Status, error) {
	if p.Status == "" {
		return fallback, nil
	}
	return ParseStatus(p.Status)
}
