package season

import (
	"encoding/json"
	"net/http"
	"time"
)

type seasonResponse struct {
	GoldenHour GoldenHour `json:"golden_hour"`
	Tip        Tip        `json:"tip"`
	Midsummer  bool       `json:"midsummer"`
}

// GetSeasonHandler serves GET /api/season.
func GetSeasonHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(seasonResponse{
		GoldenHour: GoldenHourFor(now),
		Tip:        TipFor(now),
		Midsummer:  IsMidsummer(now),
	})
}
