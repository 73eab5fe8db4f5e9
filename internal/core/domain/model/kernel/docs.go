// Package kernel provides the shared value objects of the kitchen domain.
//
// The package includes:
//   - UUID: identifier for orders and line items, invalid as a zero value
//   - Money: exact non-negative decimal amount with half-up rounding to two places
//   - Clock: the injectable source of the current instant
//
// All values are immutable and safe for concurrent use.
package kernel
