package favorites

import (
	"net/http"

	"github.com/badekart/badekart-backend/internal/auth"
	"github.com/badekart/badekart-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(auth.SessionInfo{}))

	r.Get("/", ListFavoritesHandler)
	r.Post("/toggle", ToggleFavoriteHandler)

	return r
}
