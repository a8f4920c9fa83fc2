package shipping

// RateBucket is the static pricing for one carrier in one region.
type RateBucket struct {
	Base  int
	PerKm int
	ETA   ETA
}

// Carrier describes a platform carrier and its three rate buckets.
type Carrier struct {
	Method  Method
	Name    string
	Buckets map[Region]RateBucket
}

// Bucket returns the rate bucket for the region.
func (c Carrier) Bucket(r Region) (RateBucket, bool) {
	b, ok := c.Buckets[r]
	return b, ok
}

// RateTable maps each platform carrier to its pricing.
type RateTable map[Method]Carrier

// Carrier looks up a carrier by method. Non-platform methods are never present.
func (t RateTable) Carrier(m Method) (Carrier, bool) {
	c, ok := t[m]
	return c, ok
}

// DefaultRateTable returns the rate card shipped with the marketplace. Fees are
// in VND.
func DefaultRateTable() RateTable {
	return RateTable{
		GHN: {
			Method: GHN,
			Name:   "Giao Hàng Nhanh",
			Buckets: map[Region]RateBucket{
				Hanoi:      {Base: 25000, PerKm: 2000, ETA: mustETA(1, 2)},
				HCM:        {Base: 30000, PerKm: 2500, ETA: mustETA(1, 2)},
				Nationwide: {Base: 40000, PerKm: 3000, ETA: mustETA(3, 5)},
			},
		},
		GHTK: {
			Method: GHTK,
			Name:   "Giao Hàng Tiết Kiệm",
			Buckets: map[Region]RateBucket{
				Hanoi:      {Base: 20000, PerKm: 1500, ETA: mustETA(2, 3)},
				HCM:        {Base: 25000, PerKm: 2000, ETA: mustETA(2, 3)},
				Nationwide: {Base: 35000, PerKm: 2500, ETA: mustETA(4, 7)},
			},
		},
		ViettelPost: {
			Method: ViettelPost,
			Name:   "Viettel Post",
			Buckets: map[Region]RateBucket{
				Hanoi:      {Base: 22000, PerKm: 1800, ETA: mustETA(2, 3)},
				HCM:        {Base: 27000, PerKm: 2200, ETA: mustETA(2, 3)},
				Nationwide: {Base: 38000, PerKm: 2800, ETA: mustETA(3, 6)},
			},
		},
	}
}
