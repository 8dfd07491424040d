package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type RouterConfig struct {
	Loan        *LoanHandler
	Tranche     *TrancheHandler
	RateLimiter *RateLimiter
	Log         zerolog.Logger
}

// NewRouter wires the API. Every /loan route goes through the rate limiter.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(cfg.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, cfg.Log, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/loan", func(r chi.Router) {
		r.Use(RateLimitMiddleware(cfg.RateLimiter, cfg.Log))

		r.Post("/calculate", cfg.Loan.CalculateLoan)
		r.Post("/tranche-split", cfg.Tranche.SearchSplit)
		r.Get("/tranche-split/{id}", cfg.Tranche.GetSplit)
	})

	return r
}
