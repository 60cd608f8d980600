// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/formflow/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. confirmLimit wraps only
// the confirmation endpoint; pass nil to leave it unlimited.
func NewRouter(
	formHandler *handlers.FormHandler,
	healthHandler *handlers.HealthHandler,
	confirmLimit func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1/forms", func(r chi.Router) {
		r.Get("/", formHandler.ListForms)
		r.Get("/{form}/schema", formHandler.GetSchema)
		r.Post("/{form}/validate", formHandler.Validate)
		r.Post("/{form}/steps", formHandler.VisibleSteps)

		// Calculated fields and their confirmations.
		r.Post("/{form}/calculations", formHandler.Calculate)
		r.Get("/{form}/calculations/{key}/quorum", formHandler.GetQuorum)
		if confirmLimit != nil {
			r.With(confirmLimit).Post("/{form}/calculations/{key}/confirmations", formHandler.Confirm)
		} else {
			r.Post("/{form}/calculations/{key}/confirmations", formHandler.Confirm)
		}
	})

	return r
}
