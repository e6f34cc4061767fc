package places

import (
	"log"
	"net/http"
)

var client *Client

func Init() {
	client = NewClient()
	if client == nil {
		log.Println("GOOGLE_MAPS_API_KEY not set, places endpoints disabled")
	}
}

// NearbyHandler serves GET /api/places?lat=..&lng=..&type=..&radius=..
func NearbyHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, lng, placeType := q.Get("lat"), q.Get("lng"), q.Get("type")
	if lat == "" || lng == "" || placeType == "" {
		http.Error(w, "lat, lng and type are required", http.StatusBadRequest)
		return
	}
	radius := q.Get("radius")
	if radius == "" {
		radius = "1000"
	}

	if client == nil {
		http.Error(w, "Places service not configured", http.StatusServiceUnavailable)
		return
	}

	body, err := client.Nearby(r.Context(), lat, lng, placeType, radius)
	if err != nil {
		log.Printf("Failed to fetch nearby places: %v", err)
		http.Error(w, "Failed to fetch nearby places", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// DirectionsHandler serves GET /api/directions with origin/destination pairs.
func DirectionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	originLat, originLng := q.Get("originLat"), q.Get("originLng")
	destLat, destLng := q.Get("destLat"), q.Get("destLng")
	if originLat == "" || originLng == "" || destLat == "" || destLng == "" {
		http.Error(w, "originLat, originLng, destLat and destLng are required", http.StatusBadRequest)
		return
	}
	mode := q.Get("mode")
	if mode == "" {
		mode = "DRIVING"
	}

	if client == nil {
		http.Error(w, "Places service not configured", http.StatusServiceUnavailable)
		return
	}

	body, err := client.Directions(r.Context(), originLat, originLng, destLat, destLng, mode)
	if err != nil {
		log.Printf("Failed to fetch directions: %v", err)
		http.Error(w, "Failed to fetch directions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
