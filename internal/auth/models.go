package auth

import "time"

type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;unique" json:"-"`
	ExpiresAt time.Time `gorm:"not null"`
}

type User struct {
	UserID         string    `gorm:"primaryKey" json:"user_id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `json:"password" gorm:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Profile holds the public-facing user data shown next to submissions.
// The admin flag lives here so the moderation module can check it with a
// single-field lookup.
type Profile struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `json:"name"`
	ProfileImageURL string    `json:"profile_image_url"`
	IsAdmin         bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Session) TableName() string { return "app_auth.sessions" }
func (User) TableName() string    { return "app_auth.users" }
func (Profile) TableName() string { return "app_auth.profiles" }
