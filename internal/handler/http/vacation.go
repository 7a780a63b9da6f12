package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/vacation"
	"github.com/InfElineas/Control-de-Asistencia/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService vacation.Service
}

func NewVacationHandler(vacationService vacation.Service) VacationHandler {
	return &VacationHandlerImpl{vacationService: vacationService}
}

func yearParam(r *http.Request) int {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0
	}
	return year
}

// Create implements VacationHandler.
func (h *VacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.vacationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Solicitud de vacaciones registrada", resp)
}

// Cancel implements VacationHandler.
func (h *VacationHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	resp, err := h.vacationService.Cancel(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Solicitud cancelada", resp)
}

// Review implements VacationHandler.
func (h *VacationHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req vacation.ReviewRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "requestID")

	resp, err := h.vacationService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Solicitud revisada", resp)
}

// Balance implements VacationHandler.
func (h *VacationHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.vacationService.Balance(r.Context(), yearParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Overview implements VacationHandler.
func (h *VacationHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.vacationService.Overview(r.Context(), yearParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
