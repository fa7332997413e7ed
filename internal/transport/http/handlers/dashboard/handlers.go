package dashboardhandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"morisco/internal/domain/dashboard"
	"morisco/internal/transport/http/api"
	"morisco/internal/transport/http/middleware"
)

type Handler struct {
	Service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireSession).Get("/dashboard", h.handleOverview)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	overview, err := h.Service.Overview(r.Context(), time.Now().UTC())
	if err != nil {
		slog.Error("dashboard overview failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to load dashboard", requestID)
		return
	}

	api.Success(w, overview, requestID)
}
