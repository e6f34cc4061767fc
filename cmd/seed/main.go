package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/badekart/badekart-backend/internal/db"
	"github.com/badekart/badekart-backend/internal/seeds"
	"github.com/badekart/badekart-backend/internal/spots"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// Fail fast with a readable error before GORM gets involved.
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}
	sqlDB.Close()

	db.Connect()
	spots.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
