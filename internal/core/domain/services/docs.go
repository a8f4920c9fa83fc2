// Package services provides domain services for pricing delivery of
// marketplace orders. They work over several value types and the listing read
// model, so they do not belong to a single aggregate.
//
// The package includes:
//   - ShippingResolver: computes carrier fees and ETAs, and enumerates the
//     delivery options a listing offers to a buyer address
//   - DistanceEstimator: the distance input of the fee formula, with a fixed
//     per-region implementation and a haversine one
package services
