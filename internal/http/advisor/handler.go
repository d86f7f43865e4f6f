package advisor

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/contasmart/contasmart/internal/advisor"
	"github.com/contasmart/contasmart/internal/analytics"
	"github.com/contasmart/contasmart/internal/goal"
	"github.com/contasmart/contasmart/internal/http/api"
)

// Recommendations look at the last half year of spending.
const lookbackMonths = 6

type Handler struct {
	analytics *analytics.Service
	goals     *goal.Service
}

func NewHandler(analyticsSvc *analytics.Service, goalSvc *goal.Service) *Handler {
	return &Handler{analytics: analyticsSvc, goals: goalSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/recommendations", h.recommendations)
}

type recommendationsResponse struct {
	Recommendations []advisor.Recommendation `json:"recommendations"`
	FAQs            []advisor.FAQ            `json:"faqs"`
}

func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := api.UserID(ctx)

	monthly, err := h.analytics.Monthly(ctx, userID, lookbackMonths)
	if err != nil {
		api.Err(w, err)
		return
	}

	summary, err := h.analytics.Dashboard(ctx, userID)
	if err != nil {
		api.Err(w, err)
		return
	}

	categories, err := h.analytics.Categories(ctx, userID, 0, 0)
	if err != nil {
		api.Err(w, err)
		return
	}

	goals, err := h.goals.List(ctx, userID)
	if err != nil {
		api.Err(w, err)
		return
	}

	recs := advisor.Evaluate(advisor.Input{
		Monthly:    monthly,
		Summary:    summary,
		Categories: categories,
		Goals:      goals,
		Now:        time.Now(),
	})

	if recs == nil {
		recs = []advisor.Recommendation{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(recommendationsResponse{
		Recommendations: recs,
		FAQs:            advisor.FAQs(),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
