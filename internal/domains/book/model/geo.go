package model

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DefaultSearchRadiusKm is used when a location query omits the radius.
const DefaultSearchRadiusKm = 5.0

// HaversineKm returns the great-circle distance in kilometers between
// two coordinates.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WithinRadius reports whether the distance is inside the radius.
// The boundary is inclusive: a book exactly at the radius is a hit.
func WithinRadius(distanceKm, radiusKm float64) bool {
	return distanceKm <= radiusKm
}
