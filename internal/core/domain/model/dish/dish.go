package dish

import (
	"errors"

	"grubdash/internal/core/domain/model/kernel"
)

var (
	// ErrDishIsNotConstructed is returned when a Dish was not created through
	// NewDish or RestoreDish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

	// ErrIDIsAlreadyAssigned is returned when a store tries to re-key a dish.
	ErrIDIsAlreadyAssigned = errors.New("dish id is already assigned")
)

// Dish is a menu item. Its id stays empty until a store inserts it.
type Dish struct {
	id          string
	name        string
	description string
	price       int
	imageURL    string

	isConstructed bool
}

// NewDish validates the payload and returns a dish without an id. Any id in
// the payload is ignored; ids are always generated by the store.
func NewDish(p Payload) (*Dish, error) {
	if err := ValidatePayload(p); err != nil {
		return nil, err
	}

	d := &Dish{isConstructed: true}
	d.apply(p)
	return d, nil
}

// RestoreDish rebuilds a dish read back from persistence.
func RestoreDish(id, name, description string, price int, imageURL string) (*Dish, error) {
	if err := kernel.ValidateID(id); err != nil {
		return nil, err
	}

	d, err := NewDish(Payload{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
	})
	if err != nil {
		return nil, err
	}

	d.id = id
	return d, nil
}

// Validate ensures the dish was built through a constructor.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() string          { return d.id }
func (d *Dish) Name() string        { return d.name }
func (d *Dish) Description() string { return d.description }
func (d *Dish) Price() int          { return d.price }
func (d *Dish) ImageURL() string    { return d.imageURL }

// AssignID sets the identifier exactly once.
func (d *Dish) AssignID(id string) error {
	if err := kernel.ValidateID(id); err != nil {
		return err
	}
	if d.id != "" {
		return ErrIDIsAlreadyAssigned
	}

	d.id = id
	return nil
}

// Update validates the payload and overwrites every mutable field in place.
// On error the dish is left untouched.
func (d *Dish) Update(p Payload) error {
	if err := ValidatePayload(p); err != nil {
		return err
	}

	d.apply(p)
	return nil
}

func (d *Dish) apply(p Payload) {
	price, _ := kernel.PositiveInteger(p.Price)

	d.name = p.Name
	d.description = p.Description
	d.price = price
	d.imageURL = p.ImageURL
}
