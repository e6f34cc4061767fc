package moderation

import (
	"log"

	"github.com/badekart/badekart-backend/internal/db"
)

func Init() {
	// The spots schema is owned by the spots module; admin_actions lives
	// alongside the tables it audits.
	if err := db.DB.AutoMigrate(&AdminAction{}); err != nil {
		log.Fatal("Failed to auto-migrate moderation tables: ", err)
	}

	log.Println("Moderation module initialized")
}
