// Package kernel holds the value objects shared by the order and shipping models.
//
// The package includes:
//   - UUID: identifier for orders, listings, addresses and users
//   - Address: a Vietnamese postal address (province, district, ward, street)
//   - Coordinates: an optional latitude/longitude pair attached to an address
//
// All value objects are immutable and must be built through their constructors;
// zero values fail Validate.
package kernel
