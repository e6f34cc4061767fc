package moderation

import (
	"encoding/json"
	"log"
	"time"

	"github.com/badekart/badekart-backend/internal/auth"
	"github.com/badekart/badekart-backend/internal/db"
	"github.com/badekart/badekart-backend/internal/spots"
)

// IsUserAdmin is a single-field lookup on the user's profile. It fails
// closed: any lookup error means not an admin.
func IsUserAdmin(userID string) bool {
	var profile auth.Profile
	if err := db.DB.Select("is_admin").First(&profile, "id = ?", userID).Error; err != nil {
		log.Printf("[moderation] admin check failed for %s: %v", userID, err)
		return false
	}
	return profile.IsAdmin
}

// AdminInfo adapts IsUserAdmin to middleware.AdminChecker.
type AdminInfo struct{}

func (AdminInfo) IsAdmin(userID string) bool { return IsUserAdmin(userID) }

// logAction appends an audit entry. The audit trail is best-effort: failures
// are logged but never roll back or block the decision they describe.
func logAction(adminID, actionType, targetID, targetType string, details map[string]interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}

	action := AdminAction{
		AdminID:    adminID,
		ActionType: actionType,
		TargetID:   targetID,
		TargetType: targetType,
		Details:    JSONB(payload),
	}
	if err := db.DB.Create(&action).Error; err != nil {
		log.Printf("[moderation] failed to log admin action %s on %s: %v", actionType, targetID, err)
	}
}

// Approve moves a pending community spot to approved and stamps who did it.
// The status write and the audit insert are two independent statements; the
// caller gets success as soon as the status write lands.
func Approve(spotID, adminID string) bool {
	var spot spots.CommunitySpot
	if err := db.DB.First(&spot, "id = ?", spotID).Error; err != nil {
		log.Printf("[moderation] approve: spot %s not found: %v", spotID, err)
		return false
	}
	if spot.Status != spots.StatusPending {
		return false
	}

	now := time.Now()
	if err := db.DB.Model(&spot).Updates(map[string]interface{}{
		"status":      spots.StatusApproved,
		"approved_at": now,
		"approved_by": adminID,
	}).Error; err != nil {
		log.Printf("[moderation] approve: update failed for %s: %v", spotID, err)
		return false
	}

	logAction(adminID, ActionApproveSpot, spotID, TargetCommunitySpot,
		map[string]interface{}{"action": "approved"})
	return true
}

// Reject moves a pending community spot to rejected with a reason. The
// caller must have validated that reason is non-empty.
func Reject(spotID, adminID, reason string) bool {
	var spot spots.CommunitySpot
	if err := db.DB.First(&spot, "id = ?", spotID).Error; err != nil {
		log.Printf("[moderation] reject: spot %s not found: %v", spotID, err)
		return false
	}
	if spot.Status != spots.StatusPending {
		return false
	}

	if err := db.DB.Model(&spot).Updates(map[string]interface{}{
		"status":           spots.StatusRejected,
		"rejection_reason": reason,
	}).Error; err != nil {
		log.Printf("[moderation] reject: update failed for %s: %v", spotID, err)
		return false
	}

	logAction(adminID, ActionRejectSpot, spotID, TargetCommunitySpot,
		map[string]interface{}{"action": "rejected", "reason": reason})
	return true
}

// GetPendingSpots returns the review queue, newest first, each joined with
// the submitter's display name and avatar. Profiles are fetched in one bulk
// query; a missing profile degrades to a placeholder rather than failing the
// whole queue.
func GetPendingSpots() ([]PendingSpot, error) {
	var pending []spots.CommunitySpot
	if err := db.DB.Where("status = ?", spots.StatusPending).
		Order("created_at DESC").
		Find(&pending).Error; err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return []PendingSpot{}, nil
	}

	seen := make(map[string]struct{}, len(pending))
	userIDs := make([]string, 0, len(pending))
	for _, spot := range pending {
		if _, dup := seen[spot.UserID]; dup {
			continue
		}
		seen[spot.UserID] = struct{}{}
		userIDs = append(userIDs, spot.UserID)
	}

	var profiles []auth.Profile
	if err := db.DB.Where("id IN ?", userIDs).Find(&profiles).Error; err != nil {
		// Continue with spots but without profile data.
		log.Printf("[moderation] failed to fetch submitter profiles: %v", err)
	}
	profileByID := make(map[string]auth.Profile, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}

	out := make([]PendingSpot, 0, len(pending))
	for _, spot := range pending {
		ps := PendingSpot{CommunitySpot: spot, SubmitterName: "Unknown User"}
		if p, ok := profileByID[spot.UserID]; ok {
			if p.Name != "" {
				ps.SubmitterName = p.Name
			}
			ps.SubmitterImage = p.ProfileImageURL
		}
		out = append(out, ps)
	}
	return out, nil
}

// GetAdminActions returns the most recent audit entries, newest first.
func GetAdminActions(limit int) ([]AdminAction, error) {
	if limit <= 0 {
		limit = 50
	}
	var actions []AdminAction
	err := db.DB.Order("created_at DESC").Limit(limit).Find(&actions).Error
	return actions, err
}
