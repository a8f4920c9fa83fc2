package services

import (
	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/shipping"
)

// Stand-in distances used when real coordinates are unavailable.
const (
	SameCityDistanceKm   = 20.0
	NationwideDistanceKm = 500.0
)

// DistanceEstimator estimates the route length used for the per-km surcharge.
// The region is the already resolved rate bucket for the route.
type DistanceEstimator interface {
	EstimateKm(from, to kernel.Address, region shipping.Region) (float64, error)
}

// FixedDistanceEstimator returns 20 km for same-city routes and 500 km for
// everything else.
type FixedDistanceEstimator struct{}

func (FixedDistanceEstimator) EstimateKm(_, _ kernel.Address, region shipping.Region) (float64, error) {
	if err := region.Validate(); err != nil {
		return 0, err
	}
	if region == shipping.Nationwide {
		return NationwideDistanceKm, nil
	}
	return SameCityDistanceKm, nil
}

// HaversineDistanceEstimator uses the great-circle distance when both addresses
// carry coordinates and defers to Fallback otherwise.
type HaversineDistanceEstimator struct {
	Fallback DistanceEstimator
}

func NewHaversineDistanceEstimator() HaversineDistanceEstimator {
	return HaversineDistanceEstimator{Fallback: FixedDistanceEstimator{}}
}

func (h HaversineDistanceEstimator) EstimateKm(from, to kernel.Address, region shipping.Region) (float64, error) {
	a, b := from.Coordinates(), to.Coordinates()
	if a == nil || b == nil {
		return h.fallback().EstimateKm(from, to, region)
	}
	return a.DistanceKm(*b)
}

func (h HaversineDistanceEstimator) fallback() DistanceEstimator {
	if h.Fallback == nil {
		return FixedDistanceEstimator{}
	}
	return h.Fallback
}
