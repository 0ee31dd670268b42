// Package guard lets commands and queries detect that they were built through
// their constructor rather than as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no
// error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value types whose zero value is not usable.
// Only NewConstructorGuard produces a guard that validates.
//
// Example:
//
//	type GetDishQuery struct {
//	    dishID string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (q GetDishQuery) Validate() error {
//	    return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
