package domain

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// HaversineMeters computes the great-circle distance in meters between two
// coordinates given in degrees.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c * 1000
}

// FormatDistance renders a meter value for display. Values are always
// rounded up so a place is never shown closer than it is.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Ceil(meters)))
	}
	km := math.Ceil(meters/1000*10) / 10
	return fmt.Sprintf("%.1f km", km)
}

// DistanceMetrics returns the formatted and raw meter distance between two
// coordinates.
func DistanceMetrics(lat1, lon1, lat2, lon2 float64) (string, float64) {
	meters := HaversineMeters(lat1, lon1, lat2, lon2)
	return FormatDistance(meters), meters
}
