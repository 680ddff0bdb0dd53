package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rh-war/hr-console-backend-go/internal/domain/report"
	"github.com/rh-war/hr-console-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Leave(w http.ResponseWriter, r *http.Request)
	Employees(w http.ResponseWriter, r *http.Request)
	Recruitment(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportDocument(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Dashboard implements ReportHandler.
func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.DashboardSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// Leave implements ReportHandler.
func (h *ReportHandlerImpl) Leave(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.LeaveReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rep)
}

// Employees implements ReportHandler.
func (h *ReportHandlerImpl) Employees(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.EmployeeReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rep)
}

// Recruitment implements ReportHandler.
func (h *ReportHandlerImpl) Recruitment(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.RecruitmentReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rep)
}

// ExportCSV implements ReportHandler. Streams the selected report as a CSV
// download.
func (h *ReportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	kind, err := report.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.ExportCSV(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

// ExportDocument implements ReportHandler. Serves the print-oriented HTML
// document used by the PDF flow.
func (h *ReportHandlerImpl) ExportDocument(w http.ResponseWriter, r *http.Request) {
	kind, err := report.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.ExportDocument(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

func writeExport(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}
