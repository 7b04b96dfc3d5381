package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points given in degrees. Pure and symmetric; NaN inputs propagate to the
// result, so callers validate coordinates first.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lng1)
	b := s2.LatLngFromDegrees(lat2, lng2)
	return a.Distance(b).Radians() * earthRadiusKm
}

// Round2 rounds a distance to two decimal places. Only applied at the
// serialization boundary; intermediate computations keep full precision.
func Round2(km float64) float64 {
	return math.Round(km*100) / 100
}
