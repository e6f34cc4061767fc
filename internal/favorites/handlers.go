package favorites

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/badekart/badekart-backend/internal/db"
	"github.com/badekart/badekart-backend/internal/utils"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type toggleRequest struct {
	SpotID           string  `json:"spot_id"`
	SpotName         string  `json:"spot_name"`
	WaterTemperature float64 `json:"water_temperature"`
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// ToggleFavoriteHandler adds or removes a favorite for the session user.
// Responds with the resulting membership so the client can flip its UI
// without a follow-up fetch.
func ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.SpotID) == "" {
		http.Error(w, "spot_id is required", http.StatusBadRequest)
		return
	}

	var existing Favorite
	err := db.DB.Where("user_id = ? AND spot_id = ?", userID, req.SpotID).
		First(&existing).Error

	switch {
	case err == nil:
		if err := db.DB.Delete(&existing).Error; err != nil {
			log.Printf("Failed to remove favorite: %v", err)
			http.Error(w, "Failed to remove favorite", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"favorited": false})

	case errors.Is(err, gorm.ErrRecordNotFound):
		fav := Favorite{
			UserID:           userID,
			SpotID:           req.SpotID,
			SpotName:         req.SpotName,
			WaterTemperature: req.WaterTemperature,
		}
		if err := db.DB.Create(&fav).Error; err != nil {
			// A concurrent toggle can win the insert race. The unique
			// index makes that a duplicate, which means the favorite
			// exists, which is what the caller asked for.
			if !isUniqueViolation(err) {
				log.Printf("Failed to add favorite: %v", err)
				http.Error(w, "Failed to add favorite", http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"favorited": true})

	default:
		log.Printf("Failed to look up favorite: %v", err)
		http.Error(w, "Failed to toggle favorite", http.StatusInternalServerError)
	}
}

// ListFavoritesHandler returns the session user's favorites, newest first.
func ListFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	favorites := []Favorite{}
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		log.Printf("Failed to fetch favorites: %v", err)
		http.Error(w, "Failed to fetch favorites", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favorites)
}
