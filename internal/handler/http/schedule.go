package http

import (
	"encoding/json"
	"net/http"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/schedule"
	"github.com/InfElineas/Control-de-Asistencia/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	GetByDepartment(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	WindowStatus(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Upsert implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")

	var req schedule.UpsertScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.Upsert(r.Context(), departmentID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule saved", resp)
}

// GetByDepartment implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetByDepartment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.scheduleService.GetByDepartment(r.Context(), chi.URLParam(r, "departmentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.scheduleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// WindowStatus implements ScheduleHandler.
func (h *ScheduleHandlerImpl) WindowStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := h.scheduleService.WindowStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
