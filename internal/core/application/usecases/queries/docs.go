// Package queries contains the read operations of the Dish and Order
// controllers. Queries go through the store ports rather than raw SQL so the
// same handlers serve the memory and postgres backends.
package queries
