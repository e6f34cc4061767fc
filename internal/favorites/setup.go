package favorites

import (
	"log"

	"github.com/badekart/badekart-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "spots"); err != nil {
		log.Fatalf("Failed to ensure spots schema: %v", err)
	}
	if err := db.DB.AutoMigrate(&Favorite{}); err != nil {
		log.Fatalf("Favorites AutoMigrate failed: %v", err)
	}
}
