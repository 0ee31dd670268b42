// Package kernel provides the primitives shared by the dish and order models.
//
// The package includes:
//   - NewID / IDGenerator: identifiers for newly inserted records
//   - Satisfies, IsPresent, PositiveInteger: field rules backed by
//     go-playground/validator, used by the payload validators
//
// Numbers arrive from JSON as loosely typed values, so PositiveInteger accepts
// any numeric kind and rejects fractions, zero, negatives and non-numbers.
package kernel
