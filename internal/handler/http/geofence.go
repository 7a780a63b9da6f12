package http

import (
	"encoding/json"
	"net/http"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/geofence"
	"github.com/InfElineas/Control-de-Asistencia/internal/handler/http/response"
)

type GeofenceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type GeofenceHandlerImpl struct {
	geofenceService geofence.Service
}

func NewGeofenceHandler(geofenceService geofence.Service) GeofenceHandler {
	return &GeofenceHandlerImpl{geofenceService: geofenceService}
}

// Get implements GeofenceHandler.
func (h *GeofenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.geofenceService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Update implements GeofenceHandler.
func (h *GeofenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req geofence.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.geofenceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Geofence updated", resp)
}
