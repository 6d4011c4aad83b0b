// Package models defines the core domain models for InventoryPro.
//
// # Models
//
//   - Item: a single stock-keeping unit with a price, on-hand quantity and
//     reorder threshold
//   - Status: derived LOW/OK state of an item, never stored
//   - Command: a typed row action issued by the presentation layer
//
// An item with zero quantity does not exist: reaching zero removes it from the
// inventory, so Status never needs an out-of-stock value.
//
// # Persistence
//
// Item carries the JSON field names of the persisted format
// (id, name, price, qty, min). The whole inventory is stored as one JSON array
// under a single key.
package models
