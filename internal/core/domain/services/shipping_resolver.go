package services

import (
	"fmt"
	"log/slog"
	"math"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/shipping"
)

const (
	// DefaultWeightGrams is assumed when a parcel has no recorded weight. The
	// base fee covers parcels up to this weight.
	DefaultWeightGrams = 500

	weightStepGrams     = 100
	weightStepSurcharge = 1000
)

// ShippingResolver prices delivery for listings.
//
// Fee formula for a platform carrier, in VND:
//
//	fee = base
//	    + ceil((weight - 500) / 100) * 1000   (only above 500 g)
//	    + distanceKm * perKm / 1000
//
// rounded to the nearest integer. Base, perKm and the ETA come from the
// carrier's bucket for the resolved region; the distance comes from the
// DistanceEstimator.
//
// Example usage:
//
//	resolver := services.NewShippingResolver(shipping.DefaultRateTable(), services.FixedDistanceEstimator{}, logger)
//	quote, err := resolver.CalculateFee(shipping.GHN, from, to, 500)
//	if errors.Is(err, shipping.ErrInvalidShippingParameters) {
//	    // a province is missing or the method is not a carrier
//	}
type ShippingResolver struct {
	rates    shipping.RateTable
	distance DistanceEstimator
	logger   *slog.Logger
}

// NewShippingResolver creates a resolver. A nil logger discards carrier
// failures.
func NewShippingResolver(rates shipping.RateTable, distance DistanceEstimator, logger *slog.Logger) *ShippingResolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ShippingResolver{
		rates:    rates,
		distance: distance,
		logger:   logger.With("component", "shipping_resolver"),
	}
}

// CalculateFee prices one platform carrier for one route. A weight of zero or
// less means DefaultWeightGrams.
//
// Returns:
//   - the quote with fee, bucket ETA, provider name and region
//   - an error wrapping shipping.ErrInvalidShippingParameters if the method is
//     not a platform carrier or either province is empty
func (r *ShippingResolver) CalculateFee(
	method shipping.Method,
	from, to kernel.Address,
	weightGrams int,
) (shipping.Quote, error) {
	carrier, ok := r.rates.Carrier(method)
	if !ok {
		return shipping.Quote{}, fmt.Errorf("%w: %s is not a platform carrier",
			shipping.ErrInvalidShippingParameters, method)
	}
	if !from.HasProvince() || !to.HasProvince() {
		return shipping.Quote{}, fmt.Errorf("%w: origin and destination province are required",
			shipping.ErrInvalidShippingParameters)
	}

	region := shipping.ResolveRegion(from.Province(), to.Province())
	bucket, ok := carrier.Bucket(region)
	if !ok {
		return shipping.Quote{}, fmt.Errorf("%w: %s has no rates for %s",
			shipping.ErrInvalidShippingParameters, method, region)
	}

	km, err := r.distance.EstimateKm(from, to, region)
	if err != nil {
		return shipping.Quote{}, fmt.Errorf("estimate distance: %w", err)
	}

	fee := float64(bucket.Base) +
		float64(weightSurcharge(weightGrams)) +
		km*float64(bucket.PerKm)/1000

	return shipping.Quote{
		Method:       method,
		ProviderName: carrier.Name,
		Region:       region,
		Fee:          int(math.Round(fee)),
		ETA:          bucket.ETA,
	}, nil
}

func weightSurcharge(weightGrams int) int {
	if weightGrams <= 0 {
		weightGrams = DefaultWeightGrams
	}
	if weightGrams <= DefaultWeightGrams {
		return 0
	}
	steps := (weightGrams - DefaultWeightGrams + weightStepGrams - 1) / weightStepGrams
	return steps * weightStepSurcharge
}

// AvailableMethods lists the delivery options a listing offers to the buyer
// address: platform carriers first in their fixed order, then self delivery,
// then meetup. A carrier that cannot be priced is logged and left out.
//
// An empty result means the seller does not ship to this address; it is not an
// error.
func (r *ShippingResolver) AvailableMethods(l *listing.Listing, buyer kernel.Address) []shipping.MethodOption {
	cfg := l.ShippingConfig()
	options := make([]shipping.MethodOption, 0, len(shipping.PlatformCarriers())+2)

	if cfg.PlatformShippingEnabled() {
		for _, method := range shipping.PlatformCarriers() {
			quote, err := r.CalculateFee(method, l.ShipFrom(), buyer, l.WeightGrams())
			if err != nil {
				r.logger.Warn("carrier calculation failed",
					"listing_id", l.ID().String(),
					"method", method.String(),
					"error", err)
				continue
			}
			options = append(options, shipping.NewCarrierOption(quote))
		}
	}

	if cfg.SelfDeliveryEnabled() {
		self, err := shipping.NewSelfDeliveryOption(cfg.FixedShippingFee(), cfg.ShippingNote())
		if err != nil {
			r.logger.Warn("self delivery option skipped",
				"listing_id", l.ID().String(),
				"error", err)
		} else {
			options = append(options, self)
		}
		options = append(options, shipping.NewMeetupOption())
	}

	return options
}

// CanShipToRegion reports whether the listing's configured shipping regions
// cover the buyer's province. Listings without regions ship nationwide.
func (r *ShippingResolver) CanShipToRegion(l *listing.Listing, buyerProvince string) bool {
	return l.ShippingConfig().CanShipTo(buyerProvince)
}

// ResolveOption finds the option for a method among those the listing offers
// to the buyer address.
func (r *ShippingResolver) ResolveOption(
	l *listing.Listing,
	buyer kernel.Address,
	method shipping.Method,
) (shipping.MethodOption, bool) {
	for _, opt := range r.AvailableMethods(l, buyer) {
		if opt.ID == method {
			return opt, true
		}
	}
	return shipping.MethodOption{}, false
}
