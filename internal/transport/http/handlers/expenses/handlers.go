package expenseshandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"morisco/internal/domain/expenses"
	"morisco/internal/transport/http/api"
	"morisco/internal/transport/http/middleware"
	"morisco/internal/transport/http/shared"
)

type Handler struct {
	Store *expenses.Store
}

func NewHandler(store *expenses.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/expenses", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/categories", h.handleCategories)
		r.Get("/total", h.handleMonthTotal)
	})
}

type expensePayload struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	list, err := h.Store.List(r.Context())
	if err != nil {
		slog.Error("expense list failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "expense_list_failed", "failed to list expenses", requestID)
		return
	}

	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	filtered := make([]expenses.Expense, 0, len(list))
	for _, expense := range list {
		if category != "" && expense.Category != category {
			continue
		}
		if shared.MatchesAny(query, expense.Description, expense.Category) {
			filtered = append(filtered, expense)
		}
	}

	api.Success(w, filtered, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload expensePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("description", payload.Description, "description is required")
	v.Required("category", payload.Category, "category is required")
	if payload.Category != "" && !expenses.ValidCategory(payload.Category) {
		v.Add("category", "must be a known category")
	}
	v.PositiveAmount("amount", payload.Amount)
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, requestID) {
		return
	}

	expense, err := h.Store.Create(r.Context(), payload.Description, payload.Amount, payload.Category, date)
	if err != nil {
		slog.Error("expense create failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "expense_create_failed", "failed to create expense", requestID)
		return
	}

	api.Created(w, expense, requestID)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	api.Success(w, expenses.Categories, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMonthTotal(w http.ResponseWriter, r *http.Request) {
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

	total, err := h.Store.MonthTotal(r.Context(), year, month)
	if err != nil {
		slog.Error("expense total failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "expense_total_failed", "failed to total expenses", requestID)
		return
	}

	api.Success(w, map[string]any{
		"year":  year,
		"month": int(month),
		"total": total,
	}, requestID)
}
