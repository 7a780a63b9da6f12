package http

import (
	"net/http"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/report"
	"github.com/InfElineas/Control-de-Asistencia/internal/handler/http/response"
)

type ReportHandler interface {
	DepartmentToday(w http.ResponseWriter, r *http.Request)
	GlobalToday(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// DepartmentToday implements ReportHandler.
func (h *ReportHandlerImpl) DepartmentToday(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.DepartmentToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GlobalToday implements ReportHandler.
func (h *ReportHandlerImpl) GlobalToday(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.GlobalToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
