package dish

import (
	"fmt"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/pipeline"
)

var (
	ErrNameIsRequired        = errs.NewValidationError("Dish must include a name")
	ErrDescriptionIsRequired = errs.NewValidationError("Dish must include a description")
	ErrPriceIsInvalid        = errs.NewValidationError("Dish must have a price that is an integer greater than 0")
	ErrImageURLIsRequired    = errs.NewValidationError("Dish must include an image_url")
)

// Payload is a client's proposed dish. Price keeps the raw decoded JSON value
// so that fractions and non-numbers can be told apart from missing values.
type Payload struct {
	ID          string
	Name        string
	Description string
	Price       any
	ImageURL    string
}

// ValidatePayload checks the field rules in declaration order and returns the
// first violation as an *errs.ValidationError.
func ValidatePayload(p Payload) error {
	return pipeline.First(
		func() error { return required(p.Name, ErrNameIsRequired) },
		func() error { return required(p.Description, ErrDescriptionIsRequired) },
		func() error {
			if _, ok := kernel.PositiveInteger(p.Price); !ok {
				return ErrPriceIsInvalid
			}
			return nil
		},
		func() error { return required(p.ImageURL, ErrImageURLIsRequired) },
	)
}

// ValidateRouteID rejects a payload whose id names a different dish than the
// route. An empty payload id always matches.
func (p Payload) ValidateRouteID(routeID string) error {
	if p.ID != "" && p.ID != routeID {
		return errs.NewValidationError(
			fmt.Sprintf("Dish id does not match route id. Dish: %s, Route: %s", p.ID, routeID),
		)
	}
	return nil
}

func required(value string, err error) error {
	if !kernel.IsPresent(value) {
		return err
	}
	return nil
}
