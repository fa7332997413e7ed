package customershandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"morisco/internal/domain/debts"
	"morisco/internal/transport/http/api"
	"morisco/internal/transport/http/middleware"
	"morisco/internal/transport/http/shared"
)

type Handler struct {
	Service *debts.Service
}

func NewHandler(service *debts.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
	})
	r.Route("/debts", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Post("/", h.handleCreateDebt)
		r.Post("/{debtID}/payments", h.handleApplyPayment)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	summaries, err := h.Service.CustomerSummaries(r.Context())
	if err != nil {
		slog.Error("customer list failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "customer_list_failed", "failed to list customers", requestID)
		return
	}

	query := r.URL.Query().Get("q")
	filtered := make([]debts.CustomerSummary, 0, len(summaries))
	for _, summary := range summaries {
		if shared.MatchesAny(query, summary.Name, summary.Phone, summary.Email) {
			filtered = append(filtered, summary)
		}
	}

	api.Success(w, filtered, requestID)
}

type customerPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload customerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, requestID) {
		return
	}

	customer, err := h.Service.Store.CreateCustomer(r.Context(), payload.Name, payload.Phone, payload.Email)
	if err != nil {
		slog.Error("customer create failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "customer_create_failed", "failed to create customer", requestID)
		return
	}

	api.Created(w, customer, requestID)
}

type debtPayload struct {
	CustomerID  string          `json:"customerId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

func (h *Handler) handleCreateDebt(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload debtPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("customerId", payload.CustomerID, "customerId is required")
	v.PositiveAmount("amount", payload.Amount)
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, requestID) {
		return
	}

	exists, err := h.Service.Store.CustomerExists(r.Context(), payload.CustomerID)
	if err != nil {
		slog.Error("customer lookup failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "debt_create_failed", "failed to create debt", requestID)
		return
	}
	if !exists {
		api.Fail(w, http.StatusNotFound, "customer_not_found", "customer not found", requestID)
		return
	}

	debt, err := h.Service.Store.CreateDebt(r.Context(), payload.CustomerID, payload.Amount, payload.Description, date)
	if err != nil {
		slog.Error("debt create failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "debt_create_failed", "failed to create debt", requestID)
		return
	}

	api.Created(w, debt, requestID)
}

type paymentPayload struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) handleApplyPayment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload paymentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", requestID)
		return
	}

	debt, err := h.Service.ApplyPayment(r.Context(), chi.URLParam(r, "debtID"), payload.Amount)
	if errors.Is(err, debts.ErrInvalidPayment) {
		shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: "amount", Reason: "must be a positive amount"}})
		return
	}
	if errors.Is(err, debts.ErrDebtNotFound) {
		api.Fail(w, http.StatusNotFound, "debt_not_found", "debt not found", requestID)
		return
	}
	if err != nil {
		slog.Error("payment apply failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "payment_failed", "failed to apply payment", requestID)
		return
	}

	api.Success(w, debt, requestID)
}
