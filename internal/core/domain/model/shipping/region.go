package shipping

import (
	"fmt"
	"strings"

	"ootdverse/internal/pkg/errs"

	"golang.org/x/text/unicode/norm"
)

// Region is a rate bucket. Hanoi and HCM are same-city buckets; every other
// route, including Hanoi to HCM, is priced as Nationwide.
type Region int

const (
	RegionUnknown Region = iota
	Hanoi
	HCM
	Nationwide
)

var regionKeys = map[Region]string{
	Hanoi:      "hanoi",
	HCM:        "hcm",
	Nationwide: "nationwide",
}

// Province name fragments, compared against lower-cased NFC province names.
var (
	hanoiPatterns = []string{"hà nội", "hanoi"}
	hcmPatterns   = []string{"hồ chí minh", "ho chi minh", "hcm"}
)

// ParseRegion converts "hanoi", "hcm" or "nationwide" into a Region.
func ParseRegion(key string) (Region, error) {
	for r, k := range regionKeys {
		if k == key {
			return r, nil
		}
	}
	return RegionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"region", fmt.Errorf("%q is not a valid shipping region", key))
}

// Validate rejects RegionUnknown and out of range values.
func (r Region) Validate() error {
	if _, ok := regionKeys[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("region", fmt.Errorf("%d is not a valid shipping region", r))
	}
	return nil
}

func (r Region) String() string {
	if k, ok := regionKeys[r]; ok {
		return k
	}
	return "unknown"
}

func (r Region) MarshalText() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ResolveRegion picks the rate bucket for a route. Both provinces must name the
// same city for a same-city bucket to apply.
//
// Example:
//
//	ResolveRegion("Hà Nội", "Thành phố Hà Nội") // Hanoi
//	ResolveRegion("Hà Nội", "Hồ Chí Minh")      // Nationwide
func ResolveRegion(fromProvince, toProvince string) Region {
	from := normalizeProvince(fromProvince)
	to := normalizeProvince(toProvince)

	switch {
	case containsAny(from, hanoiPatterns) && containsAny(to, hanoiPatterns):
		return Hanoi
	case containsAny(from, hcmPatterns) && containsAny(to, hcmPatterns):
		return HCM
	default:
		return Nationwide
	}
}

// Covers reports whether a province lies inside a listing's configured shipping
// region. Nationwide covers every province.
func (r Region) Covers(province string) bool {
	p := normalizeProvince(province)

	switch r {
	case Nationwide:
		return true
	case Hanoi:
		return containsAny(p, hanoiPatterns)
	case HCM:
		return containsAny(p, hcmPatterns)
	default:
		return false
	}
}

func normalizeProvince(province string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(province)))
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
