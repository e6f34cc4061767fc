package spots

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/badekart/badekart-backend/internal/db"
	"github.com/badekart/badekart-backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
)

const maxAdditionalImages = 5

// ListSpots returns the unified public listing.
func ListSpots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetAllSpots())
}

// GetSpot returns one unified spot, dispatching on the community- id prefix.
func GetSpot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	spot, ok := GetSpotByID(id)
	if !ok {
		http.Error(w, "Spot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spot)
}

// GetCommunitySpot returns the raw community row for /api/community-spot/{id}.
func GetCommunitySpot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Spot ID is required", http.StatusBadRequest)
		return
	}

	var spot CommunitySpot
	if err := db.DB.First(&spot, "id = ?", id).Error; err != nil {
		http.Error(w, "Spot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spot)
}

// CreateCommunitySpot takes a new submission and files it for moderation.
func CreateCommunitySpot(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Title            string   `json:"title"`
		Address          string   `json:"address"`
		Description      string   `json:"description"`
		Coordinates      *LatLng  `json:"coordinates"`
		MainImageURL     string   `json:"main_image_url"`
		AdditionalImages []string `json:"additional_images"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Address = strings.TrimSpace(req.Address)
	req.Description = strings.TrimSpace(req.Description)

	if req.Title == "" || req.Address == "" || req.Description == "" {
		http.Error(w, "title, address and description are required", http.StatusBadRequest)
		return
	}
	if req.Coordinates == nil {
		http.Error(w, "coordinates are required", http.StatusBadRequest)
		return
	}
	if req.MainImageURL == "" {
		http.Error(w, "main_image_url is required", http.StatusBadRequest)
		return
	}
	if len(req.AdditionalImages) > maxAdditionalImages {
		http.Error(w, "At most 5 additional images are allowed", http.StatusBadRequest)
		return
	}

	spot := CommunitySpot{
		UserID:           userID,
		Title:            req.Title,
		Address:          req.Address,
		Description:      req.Description,
		Coordinates:      *req.Coordinates,
		MainImageURL:     req.MainImageURL,
		AdditionalImages: pq.StringArray(req.AdditionalImages),
		Status:           StatusPending,
	}

	if err := db.DB.Create(&spot).Error; err != nil {
		http.Error(w, "Failed to save spot: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(spot)
}

// ListMySpots returns the caller's own submissions, any status, newest first.
func ListMySpots(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var mine []CommunitySpot
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&mine).Error; err != nil {
		http.Error(w, "Failed to fetch spots: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mine)
}

// UpdateCommunitySpot lets the submitter fix up their own spot while it is
// still awaiting review.
func UpdateCommunitySpot(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var spot CommunitySpot
	if err := db.DB.First(&spot, "id = ?", id).Error; err != nil {
		http.Error(w, "Spot not found", http.StatusNotFound)
		return
	}

	if spot.UserID != userID {
		http.Error(w, "Only the submitter can update this spot", http.StatusForbidden)
		return
	}
	if spot.Status != StatusPending {
		http.Error(w, "Cannot update spot after review", http.StatusBadRequest)
		return
	}

	var req struct {
		Title            *string  `json:"title,omitempty"`
		Address          *string  `json:"address,omitempty"`
		Description      *string  `json:"description,omitempty"`
		Coordinates      *LatLng  `json:"coordinates,omitempty"`
		MainImageURL     *string  `json:"main_image_url,omitempty"`
		AdditionalImages []string `json:"additional_images,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			http.Error(w, "title cannot be empty", http.StatusBadRequest)
			return
		}
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Address != nil {
		updates["address"] = strings.TrimSpace(*req.Address)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Coordinates != nil {
		updates["coord_lat"] = req.Coordinates.Lat
		updates["coord_lng"] = req.Coordinates.Lng
	}
	if req.MainImageURL != nil {
		updates["main_image_url"] = *req.MainImageURL
	}
	if req.AdditionalImages != nil {
		if len(req.AdditionalImages) > maxAdditionalImages {
			http.Error(w, "At most 5 additional images are allowed", http.StatusBadRequest)
			return
		}
		updates["additional_images"] = pq.StringArray(req.AdditionalImages)
	}

	if err := db.DB.Model(&spot).Updates(updates).Error; err != nil {
		http.Error(w, "Failed to update spot: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
}
