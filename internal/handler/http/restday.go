package http

import (
	"encoding/json"
	"net/http"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/restday"
	"github.com/InfElineas/Control-de-Asistencia/internal/handler/http/response"
)

type RestDayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type RestDayHandlerImpl struct {
	restDayService restday.Service
}

func NewRestDayHandler(restDayService restday.Service) RestDayHandler {
	return &RestDayHandlerImpl{restDayService: restDayService}
}

// Create implements RestDayHandler.
func (h *RestDayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req restday.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.restDayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Días de descanso guardados correctamente", resp)
}

// List implements RestDayHandler.
func (h *RestDayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.restDayService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
