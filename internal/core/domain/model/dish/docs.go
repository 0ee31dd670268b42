// Package dish provides the Dish entity, a menu item with a name, description,
// price and image, and the validator that guards dish payloads.
//
// Key business rules:
//   - name, description and image_url are required non-empty strings
//   - price is required and must be an integer greater than 0
//   - the id is assigned once by the store and never changes
//   - dishes are updated in place and never deleted
package dish
