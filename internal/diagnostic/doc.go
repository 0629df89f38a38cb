// Package diagnostic provides structured errors, warnings and notes produced
// while validating mapping files.
//
// Key capabilities:
//   - Error aggregation into a single error value
//   - "Did you mean" suggestions attached to a diagnostic
//   - Location by mapping name and field path
package diagnostic
