package moderation

import (
	"net/http"

	"github.com/badekart/badekart-backend/internal/auth"
	"github.com/badekart/badekart-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	// Everything here is admin-only.
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.AdminMiddleware(AdminInfo{}))

		r.Get("/pending", GetPending)
		r.Post("/spots/{id}/approve", ApproveSpot)
		r.Post("/spots/{id}/reject", RejectSpot)
		r.Get("/actions", ListActions)

		r.Post("/featured", CreateFeaturedSpot)
		r.Put("/featured/{id}", UpdateFeaturedSpot)
	})

	return r
}
