package reportshandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"morisco/internal/domain/payroll"
	"morisco/internal/transport/http/api"
	"morisco/internal/transport/http/middleware"
	"morisco/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/employee/{employeeID}", h.handleEmployeeReport)
		r.Get("/employee/{employeeID}/pdf", h.handleEmployeeReportPDF)
	})
}

func (h *Handler) handleEmployeeReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	report, ok := h.generate(w, r)
	if !ok {
		return
	}

	api.Success(w, report, requestID)
}

func (h *Handler) handleEmployeeReportPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	report, ok := h.generate(w, r)
	if !ok {
		return
	}

	pdfBytes, err := h.Service.RenderPDF(report)
	if err != nil {
		slog.Error("report pdf render failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "report_pdf_failed", "failed to render report", requestID)
		return
	}

	filename := fmt.Sprintf("report-%s-%s-%s.pdf",
		report.Employee.ID,
		report.StartDate.Format("2006-01-02"),
		report.EndDate.Format("2006-01-02"),
	)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if _, err := w.Write(pdfBytes); err != nil {
		slog.Warn("report pdf write failed", "err", err, "requestId", requestID)
	}
}

// generate parses and validates the range, then runs the aggregation. It
// writes the error response itself when it returns !ok.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*payroll.Report, bool) {
	requestID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	v.Required("start", r.URL.Query().Get("start"), "start date is required")
	v.Required("end", r.URL.Query().Get("end"), "end date is required")
	if v.Reject(w, requestID) {
		return nil, false
	}

	start, _ := v.Date("start", r.URL.Query().Get("start"))
	end, _ := v.Date("end", r.URL.Query().Get("end"))
	v.DateOrder("start", start, "end", end)
	if v.Reject(w, requestID) {
		return nil, false
	}

	report, err := h.Service.Generate(r.Context(), chi.URLParam(r, "employeeID"), start, end)
	if errors.Is(err, payroll.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return nil, false
	}
	if err != nil {
		slog.Error("report generation failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to generate report", requestID)
		return nil, false
	}

	return report, true
}
