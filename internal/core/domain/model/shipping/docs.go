// Package shipping holds the value types behind delivery pricing: methods,
// region buckets, the carrier rate card, ETA windows and the per-listing
// shipping configuration.
//
// Everything here is immutable and free of I/O. Fee calculation itself lives in
// services.ShippingResolver, which combines these types with a distance
// estimate.
//
// Example:
//
//	region := shipping.ResolveRegion("Hà Nội", "Hà Nội") // shipping.Hanoi
//	carrier, _ := shipping.DefaultRateTable().Carrier(shipping.GHN)
//	bucket, _ := carrier.Bucket(region)
//	fmt.Println(bucket.Base, bucket.ETA) // 25000 1-2 days
package shipping
