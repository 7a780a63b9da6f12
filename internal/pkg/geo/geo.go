package geo

import "math"

// HaversineDistance calcula la distancia entre dos coordenadas en metros.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadius = 6371000 // Radio de la tierra en metros

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLng := (lng2 - lng1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Fence is a circular authorized zone: marks are only trusted inside it.
type Fence struct {
	CenterLat         float64
	CenterLng         float64
	RadiusMeters      float64
	AccuracyThreshold float64
}

// Evaluation is the result of checking one position sample against a Fence.
// Distance is rounded to the nearest meter.
type Evaluation struct {
	Inside     bool
	Distance   int
	AccuracyOK bool
}

// Evaluate checks a sampled position against the fence. Returns nil when
// there is no position sample yet. Whether a poor-accuracy reading blocks a
// mark is a policy decision for the caller, not for the evaluator.
func Evaluate(fence Fence, lat, lng, accuracy *float64) *Evaluation {
	if lat == nil || lng == nil {
		return nil
	}

	distance := HaversineDistance(*lat, *lng, fence.CenterLat, fence.CenterLng)

	return &Evaluation{
		Inside:     distance <= fence.RadiusMeters,
		Distance:   int(math.Round(distance)),
		AccuracyOK: accuracy != nil && *accuracy <= fence.AccuracyThreshold,
	}
}
