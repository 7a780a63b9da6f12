package geofence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/audit"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/geofence"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
)

type ServiceImpl struct {
	geofence.ConfigRepository
	auditRepo audit.Repository
}

func NewService(repo geofence.ConfigRepository, auditRepo audit.Repository) geofence.Service {
	return &ServiceImpl{
		ConfigRepository: repo,
		auditRepo:        auditRepo,
	}
}

func toResponse(cfg geofence.Config) geofence.ConfigResponse {
	return geofence.ConfigResponse{
		ID:                  cfg.ID,
		CenterLat:           cfg.CenterLat,
		CenterLng:           cfg.CenterLng,
		RadiusMeters:        cfg.RadiusMeters,
		AccuracyThreshold:   cfg.AccuracyThreshold,
		BlockOnPoorAccuracy: cfg.BlockOnPoorAccuracy,
	}
}

// Get implements geofence.Service.
func (s *ServiceImpl) Get(ctx context.Context) (geofence.ConfigResponse, error) {
	cfg, err := s.ConfigRepository.Get(ctx)
	if err != nil {
		return geofence.ConfigResponse{}, err
	}
	return toResponse(cfg), nil
}

// Update implements geofence.Service.
func (s *ServiceImpl) Update(ctx context.Context, req geofence.UpdateConfigRequest) (geofence.ConfigResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return geofence.ConfigResponse{}, err
	}
	if claims.Role != user.RoleGlobalManager {
		return geofence.ConfigResponse{}, user.ErrGlobalManagerOnly
	}

	if err := req.Validate(); err != nil {
		return geofence.ConfigResponse{}, err
	}

	current, err := s.ConfigRepository.Get(ctx)
	if err != nil {
		return geofence.ConfigResponse{}, err
	}

	updated, err := s.ConfigRepository.Update(ctx, geofence.Config{
		ID:                  current.ID,
		CenterLat:           req.CenterLat,
		CenterLng:           req.CenterLng,
		RadiusMeters:        req.RadiusMeters,
		AccuracyThreshold:   req.AccuracyThreshold,
		BlockOnPoorAccuracy: req.BlockOnPoorAccuracy,
		UpdatedBy:           &claims.UserID,
	})
	if err != nil {
		return geofence.ConfigResponse{}, fmt.Errorf("failed to update geofence config: %w", err)
	}

	if err := s.auditRepo.Record(ctx, audit.Entry{
		UserID:    claims.UserID,
		Action:    audit.ActionGeofenceUpdated,
		TableName: "geofence_config",
		RecordID:  &updated.ID,
		NewData: map[string]interface{}{
			"center_lat":    updated.CenterLat,
			"center_lng":    updated.CenterLng,
			"radius_meters": updated.RadiusMeters,
		},
	}); err != nil {
		slog.Error("failed to record geofence audit entry", "error", err)
	}

	return toResponse(updated), nil
}
