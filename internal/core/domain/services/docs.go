// Package services provides domain services of the kitchen that work across
// many aggregates at once.
//
// The package includes:
//   - ReportAggregator: folds the orders of a date range into a report.Report
//
// Services here are pure: they never load or store anything themselves.
package services
