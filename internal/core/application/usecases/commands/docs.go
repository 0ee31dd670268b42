// Package commands contains the write operations of the Dish and Order
// controllers. Each operation is a Command value built through its
// constructor and a Handler that runs the validation steps in order, stopping
// at the first failure, before touching the store.
package commands
