package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/contasmart/contasmart/internal/http/accounting"
	"github.com/contasmart/contasmart/internal/http/advisor"
	"github.com/contasmart/contasmart/internal/http/analytics"
	"github.com/contasmart/contasmart/internal/http/api"
	"github.com/contasmart/contasmart/internal/http/category"
	"github.com/contasmart/contasmart/internal/http/export"
	"github.com/contasmart/contasmart/internal/http/goal"
	"github.com/contasmart/contasmart/internal/http/transaction"
	"github.com/contasmart/contasmart/internal/http/user"
	"github.com/contasmart/contasmart/internal/obs"
)

func New(
	allowedOrigins []string,
	verifier api.Verifier,
	userV1 *user.Handler,
	transactionsV1 *transaction.Handler,
	categoriesV1 *category.Handler,
	goalsV1 *goal.Handler,
	analyticsV1 *analytics.Handler,
	advisorV1 *advisor.Handler,
	ledgerV1 *accounting.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(obs.Instrument)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", obs.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			userV1.AuthRoutes(r)
		})

		// Per-user resources sit behind bearer auth.
		r.Group(func(r chi.Router) {
			r.Use(api.RequireAuth(verifier))

			r.Route("/profile", userV1.ProfileRoutes)

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				transactionsV1.Routes(r)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				categoriesV1.Routes(r)
			})

			r.Route("/goals", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				goalsV1.Routes(r)
			})

			r.Route("/analytics", analyticsV1.Routes)
			r.Route("/advisor", advisorV1.Routes)
		})

		// The accounting toolkit is a standalone surface without user scoping.
		r.Route("/ledger", ledgerV1.Routes)
		r.Route("/export", exportV1.Routes)
	})

	return router
}
