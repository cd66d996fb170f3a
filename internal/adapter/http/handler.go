package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"civic-orders/internal/core/domain"
	"civic-orders/internal/core/port"
)

// Handler is the inbound HTTP adapter of the order engine. It holds the
// usecase to execute business logic and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.OrderUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.OrderUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/orders", h.handleCreateOrder)
		r.Get("/orders/incomplete", h.handleListIncomplete)
		r.Get("/orders/{orderID}", h.handleGetOrder)
		r.Post("/orders/{orderID}/status", h.handleAdvanceStatus)
		r.Post("/orders/{orderID}/procurement", h.handleProcurement)
		r.Post("/orders/{orderID}/line-items/{lineItemID}/submissions", h.handleSubmitDeliverable)
		r.Post("/deliverables/{deliverableID}/review", h.handleReviewDeliverable)
		r.Get("/campaigns/{campaignID}/overview", h.handleCampaignOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the domain error taxonomy onto HTTP status codes.
// Invalid input is the caller's fault, missing references are 404,
// business-state collisions are 409 and must not be retried, and anything
// the backing store broke on is a 502 the caller may retry.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrPartialFailure):
		status = http.StatusInternalServerError
	case errors.Is(err, domain.ErrDependency):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", slog.Any("error", err))
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
