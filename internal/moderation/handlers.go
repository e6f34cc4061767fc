package moderation

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/badekart/badekart-backend/internal/db"
	"github.com/badekart/badekart-backend/internal/spots"
	"github.com/badekart/badekart-backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
)

// GetPending returns the review queue for the admin dashboard.
func GetPending(w http.ResponseWriter, r *http.Request) {
	queue, err := GetPendingSpots()
	if err != nil {
		http.Error(w, "Failed to fetch pending spots: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(queue)
}

// ApproveSpot handles POST /admin/spots/{id}/approve.
func ApproveSpot(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	if !Approve(id, adminID) {
		http.Error(w, "Spot is not pending or could not be updated", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "approved"})
}

// RejectSpot handles POST /admin/spots/{id}/reject. The reason is mandatory.
func RejectSpot(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		http.Error(w, "A rejection reason is required", http.StatusBadRequest)
		return
	}

	if !Reject(id, adminID, req.Reason) {
		http.Error(w, "Spot is not pending or could not be updated", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "rejected"})
}

// ListActions returns the activity feed, newest first.
func ListActions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	actions, err := GetAdminActions(limit)
	if err != nil {
		http.Error(w, "Failed to fetch admin actions: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(actions)
}

type featuredSpotRequest struct {
	ID               *string  `json:"id,omitempty"`
	Name             *string  `json:"name,omitempty"`
	Location         *string  `json:"location,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Coordinates      *spots.Coordinates `json:"coordinates,omitempty"`
	ImageURL         *string  `json:"image_url,omitempty"`
	WaterTemperature *float64 `json:"water_temperature,omitempty"`
	WaterQuality     *string  `json:"water_quality,omitempty"`
	CrowdLevel       *string  `json:"crowd_level,omitempty"`
	PartyLevel       *string  `json:"party_level,omitempty"`
	BYOBFriendly     *bool    `json:"byob_friendly,omitempty"`
	SunsetViews      *bool    `json:"sunset_views,omitempty"`
	LastUpdated      *string  `json:"last_updated,omitempty"`
	Facilities       []string `json:"facilities,omitempty"`
	Vibes            []string `json:"vibes,omitempty"`
	SortOrder        *int     `json:"sort_order,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// CreateFeaturedSpot handles POST /admin/featured.
func CreateFeaturedSpot(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req featuredSpotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == nil || *req.ID == "" || req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		http.Error(w, "id and name are required", http.StatusBadRequest)
		return
	}

	var existing spots.FeaturedSpot
	if err := db.DB.First(&existing, "id = ?", *req.ID).Error; err == nil {
		http.Error(w, "Featured spot already exists", http.StatusConflict)
		return
	}

	spot := spots.FeaturedSpot{
		ID:           *req.ID,
		Name:         strings.TrimSpace(*req.Name),
		WaterQuality: "Good",
		CrowdLevel:   "Moderate",
		PartyLevel:   "Chill",
		IsActive:     true,
	}
	applyFeaturedFields(&spot, req)

	if err := db.DB.Create(&spot).Error; err != nil {
		http.Error(w, "Failed to create featured spot: "+err.Error(), http.StatusInternalServerError)
		return
	}

	logAction(adminID, ActionCreateFeaturedSpot, spot.ID, TargetFeaturedSpot,
		map[string]interface{}{"name": spot.Name})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(spot)
}

// UpdateFeaturedSpot handles PUT /admin/featured/{id}.
func UpdateFeaturedSpot(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var spot spots.FeaturedSpot
	if err := db.DB.First(&spot, "id = ?", id).Error; err != nil {
		http.Error(w, "Featured spot not found", http.StatusNotFound)
		return
	}

	var req featuredSpotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}

	applyFeaturedFields(&spot, req)

	if err := db.DB.Save(&spot).Error; err != nil {
		http.Error(w, "Failed to update featured spot: "+err.Error(), http.StatusInternalServerError)
		return
	}

	logAction(adminID, ActionEditFeaturedSpot, spot.ID, TargetFeaturedSpot,
		map[string]interface{}{"name": spot.Name})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spot)
}

func applyFeaturedFields(spot *spots.FeaturedSpot, req featuredSpotRequest) {
	if req.Name != nil {
		spot.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		spot.Location = *req.Location
	}
	if req.Description != nil {
		spot.Description = *req.Description
	}
	if req.Coordinates != nil {
		spot.Coordinates = *req.Coordinates
	}
	if req.ImageURL != nil {
		spot.ImageURL = *req.ImageURL
	}
	if req.WaterTemperature != nil {
		spot.WaterTemperature = *req.WaterTemperature
	}
	if req.WaterQuality != nil {
		spot.WaterQuality = *req.WaterQuality
	}
	if req.CrowdLevel != nil {
		spot.CrowdLevel = *req.CrowdLevel
	}
	if req.PartyLevel != nil {
		spot.PartyLevel = *req.PartyLevel
	}
	if req.BYOBFriendly != nil {
		spot.BYOBFriendly = *req.BYOBFriendly
	}
	if req.SunsetViews != nil {
		spot.SunsetViews = *req.SunsetViews
	}
	if req.LastUpdated != nil {
		spot.LastUpdated = *req.LastUpdated
	}
	if req.Facilities != nil {
		spot.Facilities = pq.StringArray(req.Facilities)
	}
	if req.Vibes != nil {
		spot.Vibes = pq.StringArray(req.Vibes)
	}
	if req.SortOrder != nil {
		spot.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		spot.IsActive = *req.IsActive
	}
}
