package moderation

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/badekart/badekart-backend/internal/spots"
	"github.com/google/uuid"
)

// JSONB wraps json.RawMessage with Scanner/Valuer for GORM JSONB columns.
type JSONB json.RawMessage

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return string(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = JSONB("{}")
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("unsupported type: %T", value)
	}
	return nil
}

func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("{}"), nil
	}
	return json.RawMessage(j).MarshalJSON()
}

func (j *JSONB) UnmarshalJSON(data []byte) error {
	if j == nil {
		return fmt.Errorf("JSONB: UnmarshalJSON on nil pointer")
	}
	*j = append((*j)[0:0], data...)
	return nil
}

// AdminAction is the append-only audit log of moderation and curation
// decisions. Rows are never updated or deleted by the application.
type AdminAction struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	AdminID    string    `gorm:"not null;index" json:"admin_id"`
	ActionType string    `gorm:"not null" json:"action_type"` // approve_spot, reject_spot, edit_featured_spot, create_featured_spot
	TargetID   string    `gorm:"not null" json:"target_id"`
	TargetType string    `gorm:"not null" json:"target_type"` // community_spot, featured_spot
	Details    JSONB     `gorm:"type:jsonb;default:'{}'" json:"details"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (AdminAction) TableName() string { return "spots.admin_actions" }

const (
	ActionApproveSpot        = "approve_spot"
	ActionRejectSpot         = "reject_spot"
	ActionEditFeaturedSpot   = "edit_featured_spot"
	ActionCreateFeaturedSpot = "create_featured_spot"

	TargetCommunitySpot = "community_spot"
	TargetFeaturedSpot  = "featured_spot"
)

// PendingSpot is a community spot awaiting review, joined in application code
// with the submitter's profile.
type PendingSpot struct {
	spots.CommunitySpot
	SubmitterName  string `json:"submitter_name"`
	SubmitterImage string `json:"submitter_image,omitempty"`
}
