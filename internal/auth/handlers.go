package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/badekart/badekart-backend/internal/db"
	"github.com/badekart/badekart-backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 6 * time.Hour

// sessionCookie builds the session cookie. When PORT is set we are running
// deployed behind TLS, so the cookie is Secure + SameSite=None for the
// cross-origin frontend; locally it stays Lax over plain HTTP.
func sessionCookie(value string, expires time.Time) *http.Cookie {
	deployed := os.Getenv("PORT") != ""
	c := &http.Cookie{
		Name:     "session_id",
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Expires:  expires,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
	if deployed {
		c.SameSite = http.SameSiteNoneMode
		c.Secure = true
	}
	return c
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var user User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	if user.Email == "" || user.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	var existing User
	if err := db.DB.First(&existing, "email = ?", user.Email).Error; err == nil {
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}
	user.HashedPassword = string(hashed)
	user.UserID = uuid.NewString()
	user.Password = ""

	if err := db.DB.Create(&user).Error; err != nil {
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	// Every user gets a profile row; name is optional at signup.
	profile := Profile{ID: user.UserID}
	if err := db.DB.Create(&profile).Error; err != nil {
		http.Error(w, "Failed to create profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"user_id": user.UserID,
		"email":   user.Email,
	})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	var user User
	if err := db.DB.First(&user, "email = ?", strings.TrimSpace(strings.ToLower(req.Email))).Error; err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(sessionTTL)

	// One session per user: replace an existing row rather than accumulating.
	var existing Session
	if err := db.DB.First(&existing, "user_id = ?", user.UserID).Error; err == nil {
		if err := db.DB.Model(&existing).Updates(Session{
			SessionID: sessionID,
			ExpiresAt: expiresAt,
		}).Error; err != nil {
			http.Error(w, "Failed to refresh session", http.StatusInternalServerError)
			return
		}
	} else {
		session := Session{SessionID: sessionID, UserID: user.UserID, ExpiresAt: expiresAt}
		if err := db.DB.Create(&session).Error; err != nil {
			http.Error(w, "Failed to create session", http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, sessionCookie(sessionID, expiresAt))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"user_id": user.UserID,
		"email":   user.Email,
	})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "Couldn't find cookie", http.StatusUnauthorized)
		return
	}

	if err := db.DB.Where("session_id = ?", cookie.Value).Delete(&Session{}).Error; err != nil {
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, sessionCookie("", time.Unix(0, 0)))
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "logged out"})
}

func MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user User
	if err := db.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	// Profile may be missing for accounts created before profiles existed.
	var profile Profile
	if err := db.DB.First(&profile, "id = ?", userID).Error; err != nil {
		profile = Profile{ID: userID}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user_id": user.UserID,
		"email":   user.Email,
		"profile": profile,
	})
}

// UpdateProfileHandler upserts the caller's display name and avatar.
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name            *string `json:"name,omitempty"`
		ProfileImageURL *string `json:"profile_image_url,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	var profile Profile
	if err := db.DB.First(&profile, "id = ?", userID).Error; err != nil {
		profile = Profile{ID: userID}
		if err := db.DB.Create(&profile).Error; err != nil {
			http.Error(w, "Failed to create profile", http.StatusInternalServerError)
			return
		}
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.ProfileImageURL != nil {
		updates["profile_image_url"] = *req.ProfileImageURL
	}
	if len(updates) > 0 {
		if err := db.DB.Model(&profile).Updates(updates).Error; err != nil {
			http.Error(w, "Failed to update profile", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
