package staffhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"morisco/internal/domain/staff"
	"morisco/internal/transport/http/api"
	"morisco/internal/transport/http/middleware"
	"morisco/internal/transport/http/shared"
)

type Handler struct {
	Store *staff.Store
}

func NewHandler(store *staff.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.With(middleware.RequireRole("admin")).Delete("/", h.handleDelete)
			r.Get("/withdrawals", h.handleListWithdrawals)
			r.Post("/withdrawals", h.handleCreateWithdrawal)
		})
	})
}

type employeePayload struct {
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	DailyWage decimal.Decimal `json:"dailyWage"`
	HireDate  string          `json:"hireDate"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		slog.Error("employee list failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", requestID)
		return
	}

	query := r.URL.Query().Get("q")
	filtered := make([]staff.Employee, 0, len(employees))
	for _, emp := range employees {
		if shared.MatchesAny(query, emp.Name, emp.Phone) {
			filtered = append(filtered, emp)
		}
	}

	api.Success(w, filtered, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.NonNegativeAmount("dailyWage", payload.DailyWage)
	hireDate := time.Now().UTC().Truncate(24 * time.Hour)
	if payload.HireDate != "" {
		var ok bool
		if hireDate, ok = v.Date("hireDate", payload.HireDate); !ok {
			hireDate = time.Time{}
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	employee, err := h.Store.CreateEmployee(r.Context(), payload.Name, payload.Phone, payload.DailyWage, hireDate)
	if err != nil {
		slog.Error("employee create failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", requestID)
		return
	}

	api.Created(w, employee, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employee, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, staff.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		slog.Error("employee get failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", requestID)
		return
	}

	api.Success(w, employee, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.NonNegativeAmount("dailyWage", payload.DailyWage)
	if v.Reject(w, requestID) {
		return
	}

	employee, err := h.Store.UpdateEmployee(r.Context(), chi.URLParam(r, "employeeID"), payload.Name, payload.Phone, payload.DailyWage)
	if errors.Is(err, staff.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		slog.Error("employee update failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", requestID)
		return
	}

	api.Success(w, employee, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.Store.DeleteEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, staff.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		slog.Error("employee delete failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", requestID)
		return
	}

	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

type withdrawalPayload struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

func (h *Handler) handleListWithdrawals(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	withdrawals, err := h.Store.ListWithdrawals(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		slog.Error("withdrawal list failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "withdrawal_list_failed", "failed to list withdrawals", requestID)
		return
	}

	api.Success(w, withdrawals, requestID)
}

func (h *Handler) handleCreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload withdrawalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.PositiveAmount("amount", payload.Amount)
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, requestID) {
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if _, err := h.Store.GetEmployee(r.Context(), employeeID); err != nil {
		if errors.Is(err, staff.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
			return
		}
		slog.Error("employee lookup failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "withdrawal_create_failed", "failed to create withdrawal", requestID)
		return
	}

	withdrawal, err := h.Store.CreateWithdrawal(r.Context(), employeeID, payload.Amount, date, payload.Description)
	if err != nil {
		slog.Error("withdrawal create failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "withdrawal_create_failed", "failed to create withdrawal", requestID)
		return
	}

	api.Created(w, withdrawal, requestID)
}
