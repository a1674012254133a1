package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Rental-Analytics-Backend/internal/api/middleware"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/config"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemHandler *handlers.SystemHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/analytics", func(r chi.Router) {
			// Share links are read without a user.
			r.Get("/shared/{token}", analyticsHandler.Shared)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.RequireUser)

				r.Get("/report", analyticsHandler.Report)
				r.Get("/snapshot", analyticsHandler.Snapshot)
				r.Post("/share", analyticsHandler.Share)

				r.Route("/property/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/report", analyticsHandler.PropertyReport)
				})
			})
		})
	})

	return r
}
