/*
server.go - HTTP router and middleware configuration

ROUTER: chi
  Lightweight, context-based, RESTful route patterns.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestLogger: Structured request logs (zerolog)
  4. CORS:       Cross-origin requests for the storefront

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/openhaus/movein-engine/obs"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(obs.RequestLogger{Logger: h.Log}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", h.Health)

		r.Route("/buildings", func(r chi.Router) {
			r.Get("/", h.ListBuildings)
			r.Get("/{id}", h.GetBuilding)
			r.Get("/{id}/units", h.ListUnits)
			r.Post("/{id}/quote", h.CreateQuote)
		})

		r.Get("/quotes", h.ListQuotes)

		r.Route("/policy", func(r chi.Router) {
			r.Get("/", h.GetPolicy)
			r.Post("/", h.UpdatePolicy)
		})
	})

	return r
}
