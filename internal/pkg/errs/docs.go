// Package errs provides the standardized error types shared by the order and
// shipping domains.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value is missing (e.g. a province)
//   - ValueIsInvalidError: a value breaks a business rule (e.g. an unknown carrier)
//   - ValueIsOutOfRangeError: a value is outside its bounds (e.g. a rating)
//   - ObjectNotFoundError: an order, listing or address cannot be found
//   - VersionIsInvalidError: an order changed underneath a concurrent update
//
// Each error type unwraps to its sentinel (ErrValueIsRequired, ...), so callers
// classify failures with errors.Is and inspect details with errors.As.
package errs
