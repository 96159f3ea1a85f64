package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/carebridge/symptomdesk/internal/api/middleware"
	"github.com/carebridge/symptomdesk/internal/api/response"
)

// Dependencies holds all handler and middleware dependencies for the router.
// Auth and RateLimit are optional; nil disables them.
type Dependencies struct {
	Auth      *mw.Auth
	RateLimit *mw.RateLimit

	HealthHandler       http.HandlerFunc
	AnalyzeHandler      http.HandlerFunc
	ListPhysicians      http.HandlerFunc
	ListSpecializations http.HandlerFunc
}

// NewRouter builds the Chi router with middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	// Public health check
	r.Get("/api/v1/health", orNotImplemented(deps.HealthHandler))

	// Service routes
	r.Group(func(r chi.Router) {
		if deps.Auth != nil {
			r.Use(deps.Auth.Authenticate)
		}
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.Limit)
		}

		r.Post("/api/v1/analyze", orNotImplemented(deps.AnalyzeHandler))
		r.Get("/api/v1/physicians", orNotImplemented(deps.ListPhysicians))
		r.Get("/api/v1/physicians/specializations", orNotImplemented(deps.ListSpecializations))
	})

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented", nil)
	}
}
