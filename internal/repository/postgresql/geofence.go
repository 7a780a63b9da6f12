package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/geofence"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type geofenceConfigRepository struct {
	db *database.DB
}

func NewGeofenceConfigRepository(db *database.DB) geofence.ConfigRepository {
	return &geofenceConfigRepository{db: db}
}

// Get implements geofence.ConfigRepository. The table holds a single row.
func (r *geofenceConfigRepository) Get(ctx context.Context) (geofence.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, center_lat, center_lng, radius_meters, accuracy_threshold,
			   block_on_poor_accuracy, updated_by, created_at, updated_at
		FROM geofence_config
		LIMIT 1
	`

	var cfg geofence.Config
	err := q.QueryRow(ctx, query).Scan(
		&cfg.ID, &cfg.CenterLat, &cfg.CenterLng, &cfg.RadiusMeters, &cfg.AccuracyThreshold,
		&cfg.BlockOnPoorAccuracy, &cfg.UpdatedBy, &cfg.CreatedAt, &cfg.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.Config{}, geofence.ErrConfigNotFound
		}
		return geofence.Config{}, fmt.Errorf("failed to get geofence config: %w", err)
	}

	return cfg, nil
}

// Update implements geofence.ConfigRepository.
func (r *geofenceConfigRepository) Update(ctx context.Context, cfg geofence.Config) (geofence.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE geofence_config
		SET center_lat = $1,
			center_lng = $2,
			radius_meters = $3,
			accuracy_threshold = $4,
			block_on_poor_accuracy = $5,
			updated_by = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING id, center_lat, center_lng, radius_meters, accuracy_threshold,
				  block_on_poor_accuracy, updated_by, created_at, updated_at
	`

	var updated geofence.Config
	err := q.QueryRow(ctx, query,
		cfg.CenterLat,
		cfg.CenterLng,
		cfg.RadiusMeters,
		cfg.AccuracyThreshold,
		cfg.BlockOnPoorAccuracy,
		cfg.UpdatedBy,
		cfg.ID,
	).Scan(
		&updated.ID, &updated.CenterLat, &updated.CenterLng, &updated.RadiusMeters, &updated.AccuracyThreshold,
		&updated.BlockOnPoorAccuracy, &updated.UpdatedBy, &updated.CreatedAt, &updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.Config{}, geofence.ErrConfigNotFound
		}
		return geofence.Config{}, fmt.Errorf("failed to update geofence config: %w", err)
	}

	return updated, nil
}
