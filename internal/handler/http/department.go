package http

import (
	"encoding/json"
	"net/http"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/department"
	"github.com/InfElineas/Control-de-Asistencia/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	AddNonWorkingDay(w http.ResponseWriter, r *http.Request)
	ListNonWorkingDays(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentService department.Service
}

func NewDepartmentHandler(departmentService department.Service) DepartmentHandler {
	return &DepartmentHandlerImpl{departmentService: departmentService}
}

// List implements DepartmentHandler.
func (h *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// AddNonWorkingDay implements DepartmentHandler.
func (h *DepartmentHandlerImpl) AddNonWorkingDay(w http.ResponseWriter, r *http.Request) {
	var req department.AddCalendarEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.departmentService.AddNonWorkingDay(r.Context(), chi.URLParam(r, "departmentID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Non-working day added", resp)
}

// ListNonWorkingDays implements DepartmentHandler.
func (h *DepartmentHandlerImpl) ListNonWorkingDays(w http.ResponseWriter, r *http.Request) {
	resp, err := h.departmentService.ListNonWorkingDays(
		r.Context(),
		chi.URLParam(r, "departmentID"),
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
