package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/badekart/badekart-backend/internal/auth"
	"github.com/badekart/badekart-backend/internal/db"
	"github.com/badekart/badekart-backend/internal/favorites"
	"github.com/badekart/badekart-backend/internal/middleware"
	"github.com/badekart/badekart-backend/internal/moderation"
	"github.com/badekart/badekart-backend/internal/places"
	"github.com/badekart/badekart-backend/internal/season"
	"github.com/badekart/badekart-backend/internal/spots"
	"github.com/badekart/badekart-backend/internal/uploads"
	"github.com/badekart/badekart-backend/internal/weather"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Server is up!"))
}

func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		log.Println("No .env.local file found, relying on environment")
	}

	db.Connect()

	auth.Init()
	spots.Init()
	moderation.Init()
	favorites.Init()
	uploads.Init()
	weather.Init()
	places.Init()

	sweeper := auth.NewSessionSweeper(15 * time.Minute)
	sweeper.Start()
	defer sweeper.Stop()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/spots", spots.SetupRoutes())
	r.Mount("/admin", moderation.SetupRoutes())
	r.Mount("/favorites", favorites.SetupRoutes())

	r.Route("/api", func(api chi.Router) {
		// Outbound proxies share a per-client budget so one busy tab
		// cannot drain the upstream quotas.
		api.Group(func(limited chi.Router) {
			limited.Use(middleware.RateLimitMiddleware(rate.Every(time.Second), 10))
			limited.Get("/weather", weather.GetWeatherHandler)
			limited.Get("/places", places.NearbyHandler)
			limited.Get("/directions", places.DirectionsHandler)
		})

		api.Get("/season", season.GetSeasonHandler)
		api.Get("/community-spot/{id}", spots.GetCommunitySpot)

		api.Group(func(authed chi.Router) {
			authed.Use(middleware.SessionMiddleware(auth.SessionInfo{}))
			authed.Post("/upload", uploads.UploadHandler)
		})
	})

	uploadDir := http.Dir(uploads.StaticDir())
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(uploadDir)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	log.Printf("Server running on port %s", port)
	if err := http.ListenAndServe("0.0.0.0:"+port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
