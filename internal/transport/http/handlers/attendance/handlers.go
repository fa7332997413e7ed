package attendancehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"morisco/internal/domain/attendance"
	"morisco/internal/transport/http/api"
	"morisco/internal/transport/http/middleware"
	"morisco/internal/transport/http/shared"
)

type Handler struct {
	Store *attendance.Store
}

func NewHandler(store *attendance.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/", h.handleListByDate)
		r.Post("/mark", h.handleMark)
		r.Get("/register", h.handleRegisterExport)
	})
}

func (h *Handler) handleListByDate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	raw := r.URL.Query().Get("date")
	if raw == "" {
		raw = time.Now().UTC().Format("2006-01-02")
	}
	date, _ := v.Date("date", raw)
	if v.Reject(w, requestID) {
		return
	}

	records, err := h.Store.ListByDate(r.Context(), date)
	if err != nil {
		slog.Error("attendance list failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", requestID)
		return
	}

	// Summary reflects the whole day; the search filter only narrows the
	// rendered rows.
	summary := attendance.Summarize(records)

	query := r.URL.Query().Get("q")
	filtered := make([]attendance.Record, 0, len(records))
	for _, record := range records {
		name, phone := "", ""
		if record.Employee != nil {
			name, phone = record.Employee.Name, record.Employee.Phone
		}
		if shared.MatchesAny(query, name, phone) {
			filtered = append(filtered, record)
		}
	}

	api.Success(w, map[string]any{
		"date":    date.Format("2006-01-02"),
		"records": filtered,
		"summary": summary,
	}, requestID)
}

type markPayload struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (h *Handler) handleMark(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload markPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("status", payload.Status, "status is required")
	if payload.Status != "" && !attendance.ValidStatus(payload.Status) {
		v.Add("status", "must be one of present, absent, late")
	}
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, requestID) {
		return
	}

	record, err := h.Store.Mark(r.Context(), payload.EmployeeID, date, payload.Status, time.Now().UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, attendance.ErrEmployeeNotFound) || (errors.As(err, &pgErr) && pgErr.Code == "23503") {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
			return
		}
		slog.Error("attendance mark failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "attendance_mark_failed", "failed to mark attendance", requestID)
		return
	}

	api.Success(w, record, requestID)
}

func (h *Handler) handleRegisterExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	v := shared.NewValidator()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2200 {
			v.Add("year", "must be a valid year")
		} else {
			year = parsed
		}
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			v.Add("month", "must be between 1 and 12")
		} else {
			month = time.Month(parsed)
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	rows, err := h.Store.MonthRegister(r.Context(), year, month)
	if err != nil {
		slog.Error("register fetch failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "register_export_failed", "failed to export register", requestID)
		return
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.xlsx", year, int(month))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := attendance.WriteRegisterXLSX(w, rows); err != nil {
		slog.Error("register write failed", "err", err, "requestId", requestID)
	}
}
