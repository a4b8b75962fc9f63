package navmath

import "math"

// EarthRadiusNM is the mean radius of the Earth in nautical miles.
const EarthRadiusNM = 3440.065

// Position is a geographic point in signed decimal degrees (positive = N/E).
// Ranges are not validated.
type Position struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// GreatCircleNM returns the haversine distance between two points in
// nautical miles.
func GreatCircleNM(from, to Position) float64 {
	phi1 := toRadians(from.Lat)
	phi2 := toRadians(to.Lat)
	dPhi := toRadians(to.Lat - from.Lat)
	dLambda := toRadians(to.Lon - from.Lon)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	// Rounding can push a just outside [0,1] near antipodes.
	a = math.Min(1, math.Max(0, a))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusNM * c
}

// Haversine returns the great-circle distance between two points as a
// Distance result.
func Haversine(from, to Position) Result {
	return newResult(KindDistance, GreatCircleNM(from, to), UnitNauticalMiles)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
