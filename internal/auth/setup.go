package auth

import (
	"log"

	"github.com/badekart/badekart-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "app_auth"); err != nil {
		log.Fatal("Failed to ensure schema app_auth: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}, &Session{}, &Profile{}); err != nil {
		log.Fatal("Failed to auto-migrate auth tables: ", err)
	}
}
