package spots

import (
	"log"

	"github.com/badekart/badekart-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "spots"); err != nil {
		log.Fatal("Failed to ensure schema spots: ", err)
	}

	if err := db.DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatal("Failed to enable uuid-ossp extension: ", err)
	}

	if err := db.DB.AutoMigrate(&FeaturedSpot{}, &CommunitySpot{}); err != nil {
		log.Fatal("Failed to auto-migrate spot tables: ", err)
	}

	log.Println("Spots module initialized")
}
