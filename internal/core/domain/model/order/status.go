package order

import (
	"grubdash/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ──> preparing ──> out-for-delivery ──> delivered (terminal)
//
// The arrows show the usual flow. Only leaving delivered is forbidden.
type Status string

const (
	Pending        Status = "pending"
	Preparing      Status = "preparing"
	OutForDelivery Status = "out-for-delivery"
	Delivered      Status = "delivered"
)

var (
	ErrStatusIsInvalid        = errs.NewValidationError("Order must have a status of pending, preparing, out-for-delivery, delivered")
	ErrDeliveredOrderIsLocked = errs.NewValidationError("A delivered order cannot be changed")
	ErrOrderIsNotPending      = errs.NewValidationError("An order cannot be deleted unless it is pending")
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

// ParseStatus validates a raw status value.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate returns ErrStatusIsInvalid unless s is one of the four statuses.
func (s Status) Validate() error {
	switch s {
	case Pending, Preparing, OutForDelivery, Delivered:
		return nil
	default:
		return ErrStatusIsInvalid
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further change is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateChange checks a requested status against the current one. The
// target must be a known status, and nothing may change once delivered.
func (s Status) ValidateChange(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return ErrDeliveredOrderIsLocked
	}
	return nil
}

// ValidateRemove allows removal only while pending.
func (s Status) ValidateRemove() error {
	if s != Pending {
		return ErrOrderIsNotPending
	}
	return nil
}
