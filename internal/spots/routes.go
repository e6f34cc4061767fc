package spots

import (
	"net/http"

	"github.com/badekart/badekart-backend/internal/auth"
	"github.com/badekart/badekart-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	// Public listing
	r.Get("/", ListSpots)

	// Submitter routes. Registered before /{id} so "community" is not
	// swallowed by the wildcard.
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Post("/community", CreateCommunitySpot)
		r.Get("/community/mine", ListMySpots)
		r.Put("/community/{id}", UpdateCommunitySpot)
	})

	r.Get("/{id}", GetSpot)

	return r
}
