package spots

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Coordinates is the featured-spot shape ({lat, lon}).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LatLng is the community-spot shape ({lat, lng}), as submitted by the
// map picker on the frontend.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FeaturedSpot is an admin-curated bathing spot. Active rows are always part
// of the public listing, ordered by SortOrder.
type FeaturedSpot struct {
	ID               string         `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"not null" json:"name"`
	Location         string         `json:"location"`
	Description      string         `json:"description"`
	Coordinates      Coordinates    `gorm:"embedded;embeddedPrefix:coord_" json:"coordinates"`
	ImageURL         string         `json:"image_url"`
	WaterTemperature float64        `json:"water_temperature"`
	WaterQuality     string         `gorm:"default:'Good'" json:"water_quality"`     // Excellent, Good, Fair, Poor
	CrowdLevel       string         `gorm:"default:'Moderate'" json:"crowd_level"`   // Low, Moderate, High
	PartyLevel       string         `gorm:"default:'Chill'" json:"party_level"`      // Quiet, Chill, Party-Friendly
	BYOBFriendly     bool           `json:"byob_friendly"`
	SunsetViews      bool           `json:"sunset_views"`
	LastUpdated      string         `json:"last_updated"`
	Facilities       pq.StringArray `gorm:"type:text[]" json:"facilities"`
	Vibes            pq.StringArray `gorm:"type:text[]" json:"vibes"`
	SortOrder        int            `gorm:"default:0;index" json:"sort_order"`
	IsActive         bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CommunitySpot is a user submission. Only status=approved rows appear in the
// public listing. The enrichment fields are optional; moderators may backfill
// them after approval, and the unified view applies defaults when unset.
type CommunitySpot struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID           string         `gorm:"not null;index" json:"user_id"`
	Title            string         `gorm:"not null" json:"title"`
	Address          string         `json:"address"`
	Description      string         `json:"description"`
	Coordinates      LatLng         `gorm:"embedded;embeddedPrefix:coord_" json:"coordinates"`
	MainImageURL     string         `json:"main_image_url"`
	AdditionalImages pq.StringArray `gorm:"type:text[]" json:"additional_images"`

	// Workflow state
	Status          string  `gorm:"default:'pending';index" json:"status"` // pending, approved, rejected
	RejectionReason *string `json:"rejection_reason,omitempty"`

	// Optional enrichment to match the featured shape
	WaterTemperature *float64       `json:"water_temperature,omitempty"`
	WaterQuality     *string        `json:"water_quality,omitempty"`
	CrowdLevel       *string        `json:"crowd_level,omitempty"`
	PartyLevel       *string        `json:"party_level,omitempty"`
	BYOBFriendly     *bool          `json:"byob_friendly,omitempty"`
	SunsetViews      *bool          `json:"sunset_views,omitempty"`
	Facilities       pq.StringArray `gorm:"type:text[]" json:"facilities"`
	Vibes            pq.StringArray `gorm:"type:text[]" json:"vibes"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy *string    `json:"approved_by,omitempty"`
}

func (FeaturedSpot) TableName() string  { return "spots.featured_spots" }
func (CommunitySpot) TableName() string { return "spots.user_spots" }

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
