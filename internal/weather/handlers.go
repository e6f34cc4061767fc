package weather

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	client *Client

	// Weather barely changes inside an hour and the upstream quota is
	// small, so responses are cached per coordinate pair.
	reportCache = cache.New(time.Hour, 10*time.Minute)
)

func Init() {
	client = NewClient()
	if client == nil {
		log.Println("OPENWEATHER_API_KEY not set, weather endpoint disabled")
	}
}

// GetWeatherHandler serves GET /api/weather?lat=..&lon=..
func GetWeatherHandler(w http.ResponseWriter, r *http.Request) {
	lat := r.URL.Query().Get("lat")
	lon := r.URL.Query().Get("lon")
	if lat == "" || lon == "" {
		http.Error(w, "lat and lon are required", http.StatusBadRequest)
		return
	}

	if client == nil {
		http.Error(w, "Weather service not configured", http.StatusServiceUnavailable)
		return
	}

	cacheKey := lat + "," + lon
	if cached, found := reportCache.Get(cacheKey); found {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cached.(*Report))
		return
	}

	report, err := client.FetchReport(r.Context(), lat, lon)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case http.StatusUnauthorized:
				http.Error(w, "Weather API key rejected", http.StatusUnauthorized)
				return
			case http.StatusTooManyRequests:
				http.Error(w, "Weather API quota exceeded", http.StatusTooManyRequests)
				return
			}
		}
		log.Printf("Failed to fetch weather: %v", err)
		http.Error(w, "Failed to fetch weather", http.StatusInternalServerError)
		return
	}

	reportCache.Set(cacheKey, report, cache.DefaultExpiration)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
