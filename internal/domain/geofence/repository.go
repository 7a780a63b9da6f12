package geofence

import "context"

// ConfigRepository gives access to the singleton geofence configuration.
type ConfigRepository interface {
	// Get retrieves the geofence config
	Get(ctx context.Context) (Config, error)

	// Update replaces the geofence config fields
	Update(ctx context.Context, cfg Config) (Config, error)
}
