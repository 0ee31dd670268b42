package order

import (
	"errors"
	"slices"

	"grubdash/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIDIsAlreadyAssigned is returned when a store tries to re-key an order.
	ErrIDIsAlreadyAssigned = errors.New("order id is already assigned")

	// ErrLineItemsAreRequired is returned when restoring an order without items.
	ErrLineItemsAreRequired = errors.New("order must have at least one line item")
)

// Order is a customer request for one or more dishes with a lifecycle status.
//
// Order follows these invariants:
//   - the id is assigned once by the store and never changes
//   - dishes is never empty and every quantity is positive
//   - status is always one of the four known statuses
//   - once delivered, nothing changes
type Order struct {
	id           string
	deliverTo    string
	mobileNumber string
	status       Status
	dishes       []LineItem

	isConstructed bool
}

// NewOrder validates the payload and returns an order without an id. The
// status defaults to pending when the payload carries none.
func NewOrder(p Payload) (*Order, error) {
	if err := ValidatePayload(p); err != nil {
		return nil, err
	}

	status, err := p.RequestedStatus(Pending)
	if err != nil {
		return nil, err
	}

	o := &Order{isConstructed: true}
	o.apply(p, status)
	return o, nil
}

// RestoreOrder rebuilds an order read back from persistence.
func RestoreOrder(id, deliverTo, mobileNumber string, status Status, dishes []LineItem) (*Order, error) {
	if err := errors.Join(
		kernel.ValidateID(id),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(dishes) == 0 {
		return nil, ErrLineItemsAreRequired
	}
	if !kernel.IsPresent(deliverTo) {
		return nil, ErrDeliverToIsRequired
	}
	if !kernel.IsPresent(mobileNumber) {
		return nil, ErrMobileNumberIsRequired
	}

	return &Order{
		id:            id,
		deliverTo:     deliverTo,
		mobileNumber:  mobileNumber,
		status:        status,
		dishes:        slices.Clone(dishes),
		isConstructed: true,
	}, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() string           { return o.id }
func (o *Order) DeliverTo() string    { return o.deliverTo }
func (o *Order) MobileNumber() string { return o.mobileNumber }
func (o *Order) Status() Status       { return o.status }

// Dishes returns a copy of the line items in order.
func (o *Order) Dishes() []LineItem {
	return slices.Clone(o.dishes)
}

// AssignID sets the identifier exactly once.
func (o *Order) AssignID(id string) error {
	if err := kernel.ValidateID(id); err != nil {
		return err
	}
	if o.id != "" {
		return ErrIDIsAlreadyAssigned
	}

	o.id = id
	return nil
}

// Update validates the payload, applies the status guard and overwrites
// deliverTo, mobileNumber, status and dishes in place. The payload must name a
// status. On error the order is left untouched.
func (o *Order) Update(p Payload) error {
	if err := ValidatePayload(p); err != nil {
		return err
	}

	target := Status(p.Status)
	if err := o.status.ValidateChange(target); err != nil {
		return err
	}

	o.apply(p, target)
	return nil
}

// ValidateRemove reports whether the order may be removed from its store.
func (o *Order) ValidateRemove() error {
	return o.status.ValidateRemove()
}

func (o *Order) apply(p Payload, status Status) {
	o.deliverTo = p.DeliverTo
	o.mobileNumber = p.MobileNumber
	o.status = status
	o.dishes = lineItemsFrom(p.Dishes)
}
