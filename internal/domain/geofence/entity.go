package geofence

import (
	"time"

	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/geo"
)

// Config is the single authorized zone for all attendance marks.
// Mutated only by the global manager; read as an immutable snapshot for
// the duration of one decision evaluation.
type Config struct {
	ID                  string
	CenterLat           float64
	CenterLng           float64
	RadiusMeters        float64
	AccuracyThreshold   float64
	BlockOnPoorAccuracy bool
	UpdatedBy           *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Fence converts the stored config into the evaluator's input.
func (c Config) Fence() geo.Fence {
	return geo.Fence{
		CenterLat:         c.CenterLat,
		CenterLng:         c.CenterLng,
		RadiusMeters:      c.RadiusMeters,
		AccuracyThreshold: c.AccuracyThreshold,
	}
}
