package analytics

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/contasmart/contasmart/internal/analytics"
	"github.com/contasmart/contasmart/internal/http/api"
)

type Handler struct {
	svc *analytics.Service
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/monthly", h.monthly)
	r.Get("/categories", h.categories)
}

const defaultMonths = 12

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Dashboard(r.Context(), api.UserID(r.Context()))
	if err != nil {
		api.Err(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	months := defaultMonths

	if s := r.URL.Query().Get("months"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid months", http.StatusBadRequest)
			return
		}

		months = n
	}

	totals, err := h.svc.Monthly(r.Context(), api.UserID(r.Context()), months)
	if err != nil {
		api.Err(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(totals); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	var (
		year  int
		month time.Month
	)

	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}

		m, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}

		year, month = y, time.Month(m)
	}

	totals, err := h.svc.Categories(r.Context(), api.UserID(r.Context()), year, month)
	if err != nil {
		api.Err(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(totals); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
