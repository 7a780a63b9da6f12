package geofence

import "context"

// Service exposes the singleton authorized zone.
type Service interface {
	// Get retrieves the current zone configuration
	Get(ctx context.Context) (ConfigResponse, error)

	// Update replaces the zone configuration (global manager only)
	Update(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
}
