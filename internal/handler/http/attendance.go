package http

import (
	"encoding/json"
	"net/http"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/attendance"
	"github.com/InfElineas/Control-de-Asistencia/internal/handler/http/response"
)

type AttendanceHandler interface {
	SubmitMark(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	markService attendance.MarkService
}

func NewAttendanceHandler(markService attendance.MarkService) AttendanceHandler {
	return &AttendanceHandlerImpl{markService: markService}
}

// SubmitMark implements AttendanceHandler. Success replies with the raw
// validation contract body rather than the standard envelope; denials are
// rendered by response.HandleError.
func (h *AttendanceHandlerImpl) SubmitMark(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitMarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.markService.SubmitMark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// GetToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	resp, err := h.markService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GetHistory implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	filter := attendance.HistoryFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	resp, err := h.markService.GetHistory(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
