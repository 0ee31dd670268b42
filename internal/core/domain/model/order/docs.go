// Package order provides the Order entity, its line items, the payload
// validator and the status guard.
//
// Key business rules:
//   - deliverTo and mobileNumber are required non-empty strings
//   - an order has at least one line item and every quantity is an integer > 0
//   - status is one of pending, preparing, out-for-delivery, delivered and
//     defaults to pending
//   - a delivered order can never change again
//   - an order can only be removed while pending
//
// The status guard is deliberately not a transition table: any of the four
// statuses may be requested (forward, backward or unchanged) until the order
// is delivered.
package order
