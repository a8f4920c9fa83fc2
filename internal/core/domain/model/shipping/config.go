package shipping

import (
	"errors"
	"slices"
	"strings"

	"ootdverse/internal/pkg/errs"
)

// Config is the seller's per-listing shipping configuration.
type Config struct {
	platformShippingEnabled bool
	selfDeliveryEnabled     bool
	fixedShippingFee        int
	regions                 []Region
	shippingNote            string
}

// NewConfig validates a listing's shipping configuration. An empty region list
// means the listing ships nationwide.
func NewConfig(platformEnabled, selfDeliveryEnabled bool, fixedShippingFee int, regions []Region) (Config, error) {
	var err error
	if fixedShippingFee < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("fixedShippingFee", fixedShippingFee, 0, "unbounded"))
	}
	for _, r := range regions {
		err = errors.Join(err, r.Validate())
	}
	if err != nil {
		return Config{}, err
	}

	return Config{
		platformShippingEnabled: platformEnabled,
		selfDeliveryEnabled:     selfDeliveryEnabled,
		fixedShippingFee:        fixedShippingFee,
		regions:                 slices.Clone(regions),
	}, nil
}

func (c Config) PlatformShippingEnabled() bool { return c.platformShippingEnabled }
func (c Config) SelfDeliveryEnabled() bool     { return c.selfDeliveryEnabled }
func (c Config) FixedShippingFee() int         { return c.fixedShippingFee }
func (c Config) ShippingNote() string          { return c.shippingNote }

// WithShippingNote returns a copy carrying the seller's note for buyers, shown
// on the self delivery option.
func (c Config) WithShippingNote(note string) Config {
	c.regions = slices.Clone(c.regions)
	c.shippingNote = strings.TrimSpace(note)
	return c
}

// Regions returns the configured regions, defaulting to nationwide.
func (c Config) Regions() []Region {
	if len(c.regions) == 0 {
		return []Region{Nationwide}
	}
	return slices.Clone(c.regions)
}

// CanShipTo reports whether any configured region covers the province.
func (c Config) CanShipTo(province string) bool {
	for _, r := range c.Regions() {
		if r.Covers(province) {
			return true
		}
	}
	return false
}
