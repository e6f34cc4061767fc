package auth

import (
	"github.com/badekart/badekart-backend/internal/db"
	"github.com/badekart/badekart-backend/internal/utils"
)

// SessionInfo adapts the session table to middleware.SessionFetcher.
type SessionInfo struct{}

func (si SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	var session Session

	if err := db.DB.First(&session, "session_id = ?", id).Error; err != nil {
		return utils.SessionData{}, err
	}

	return utils.SessionData{
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
