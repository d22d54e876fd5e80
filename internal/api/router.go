package api

import (
	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(svc *Service, authEnabled bool, token string) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Conversion.
	r.Post("/convert", h.Convert)
	r.Get("/jdn", h.ToJDN)
	r.Get("/date", h.FromJDN)

	// Catalog and cycles.
	r.Get("/calendars", h.Calendars)
	r.Get("/cycles", h.Cycles)

	// Correctness and telemetry.
	r.Get("/verify", h.Verify)
	r.Get("/history", h.History)

	return r
}
