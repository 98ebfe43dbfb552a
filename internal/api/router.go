package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/saiyeshwin/housebook-backend/internal/api/handlers"
	"github.com/saiyeshwin/housebook-backend/internal/auth"
	"github.com/saiyeshwin/housebook-backend/internal/config"
	"github.com/saiyeshwin/housebook-backend/internal/metrics"
	"github.com/saiyeshwin/housebook-backend/internal/middleware"
	"github.com/saiyeshwin/housebook-backend/internal/services"
)

func NewRouter(cfg config.Config, resolver *auth.Resolver, sessions *services.SessionService, ledgerSvc *services.LedgerService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	// The original app served a browser frontend from anywhere on the LAN.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	ah := handlers.NewAuthHandler(resolver, sessions)
	lh := handlers.NewLedgerHandler(ledgerSvc)
	sm := middleware.NewSessionMiddleware(sessions)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", ah.Login)
		r.Post("/logout", ah.Logout)

		r.Route("/transactions", func(r chi.Router) {
			r.Use(sm.Require)
			r.Get("/", lh.List)

			// mutations are Admin-only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", lh.Create)
				r.Put("/{id}", lh.Update)
				r.Delete("/{id}", lh.Delete)
			})
		})
	})

	return r
}
