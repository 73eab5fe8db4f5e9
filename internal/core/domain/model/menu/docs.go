// Package menu holds the read-only view of the menu that order placement resolves against.
// Menu maintenance lives outside this service; the kitchen only reads items.
package menu
