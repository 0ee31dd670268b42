package kernel

import (
	"fmt"
	"strings"

	"grubdash/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsRequired is returned when a record is restored or addressed without an id.
var ErrIDIsRequired = errs.NewValueIsRequiredError("id")

// IDGenerator produces identifiers for new records. Stores receive one at
// construction so tests can substitute a deterministic sequence.
type IDGenerator func() (string, error)

// NewID returns a random (version 4) UUID in its canonical string form.
//
// Example:
//
//	id, err := kernel.NewID()
//	fmt.Println(id) // e.g. "550e8400-e29b-41d4-a716-446655440000"
func NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

// ValidateID rejects empty or blank identifiers.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDIsRequired
	}
	return nil
}
