// Package order implements the Order aggregate of the kitchen: line items with
// price snapshots, the derived total, and the lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root, created by NewOrder and rebuilt by RestoreOrder
//   - Status: PENDING -> PREPARING -> READY -> COMPLETED, with CANCELLED reachable
//     from every non-terminal state
//   - ItemStatus: the forward-only status of a single line item
//   - Type, Priority, Customer and Code: the value objects captured at placement
//   - Event: what the aggregate records on each mutation for later broadcast
//
// Key business rules:
//   - An order always has at least one line item
//   - The total is recomputed on every item mutation and never stored stale
//   - readyTime and completedTime are stamped exactly once
//   - Only PENDING and PREPARING orders accept new line items
package order
