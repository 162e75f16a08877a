// Package api serves the dashboard queries over HTTP as JSON.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"pricing-dashboard/services"
	"pricing-dashboard/utils"
)

// RouterConfig holds the HTTP-facing settings of the API.
type RouterConfig struct {
	RequestTimeout  time.Duration
	CORSOrigins     []string
	ImageBaseURL    string
	PriceChartLimit int
}

// NewRouter creates the API router with all routes configured.
func NewRouter(engine *services.Engine, cfg RouterConfig, logger *utils.Logger) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(cfg.CORSOrigins))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"pricing-dashboard"}`))
	})

	h := NewHandler(engine, cfg, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/data", h.Data)
		r.Get("/overview", h.Overview)
		r.Get("/filters", h.FilterOptions)
		r.Get("/map", h.Map)
		r.Get("/prices", h.Prices)

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", h.Groups)
			r.Get("/{key}", h.Group)
		})
	})

	return r
}

// CORS allows the configured origins; "*" allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := false
			for _, o := range allowedOrigins {
				if o == "*" || o == origin {
					allowed = true
					break
				}
			}

			if allowed && origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
