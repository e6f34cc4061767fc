// Package seeds loads the curated featured spots into the database. Seeding
// is idempotent: existing rows are skipped, never overwritten, so manual
// edits made through the admin endpoints survive a re-run.
package seeds

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/badekart/badekart-backend/internal/db"
	"github.com/badekart/badekart-backend/internal/spots"
	"github.com/goccy/go-yaml"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type featuredSpotSeed struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description"`
	Address          string   `yaml:"address"`
	Lat              float64  `yaml:"lat"`
	Lon              float64  `yaml:"lon"`
	WaterTemperature float64  `yaml:"water_temperature"`
	WaterQuality     string   `yaml:"water_quality"`
	CrowdLevel       string   `yaml:"crowd_level"`
	PartyLevel       string   `yaml:"party_level"`
	BYOBFriendly     bool     `yaml:"byob_friendly"`
	SunsetViews      bool     `yaml:"sunset_views"`
	Facilities       []string `yaml:"facilities"`
	Vibes            []string `yaml:"vibes"`
	SortOrder        int      `yaml:"sort_order"`
}

type seedFile struct {
	FeaturedSpots []featuredSpotSeed `yaml:"featured_spots"`
}

func defaultSeedPath() string {
	if p := os.Getenv("SEED_FILE"); p != "" {
		return p
	}
	return filepath.Join("internal", "spots", "data", "featured_spots.yaml")
}

// SeedAll runs every seeder.
func SeedAll() error {
	return SeedFeaturedSpots(defaultSeedPath())
}

// SeedFeaturedSpots inserts the featured spots from the given YAML file.
func SeedFeaturedSpots(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	created, skipped := 0, 0
	for _, seed := range file.FeaturedSpots {
		id := seed.ID
		if id == "" {
			id = slugify(seed.Name)
		}
		if id == "" {
			return fmt.Errorf("seed entry %q has no usable id", seed.Name)
		}

		var existing spots.FeaturedSpot
		err := db.DB.First(&existing, "id = ?", id).Error
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("check featured spot %s: %w", id, err)
		}

		spot := spots.FeaturedSpot{
			ID:               id,
			Name:             seed.Name,
			Location:         seed.Address,
			Description:      seed.Description,
			Coordinates:      spots.Coordinates{Lat: seed.Lat, Lon: seed.Lon},
			WaterTemperature: seed.WaterTemperature,
			WaterQuality:     seed.WaterQuality,
			CrowdLevel:       seed.CrowdLevel,
			PartyLevel:       seed.PartyLevel,
			BYOBFriendly:     seed.BYOBFriendly,
			SunsetViews:      seed.SunsetViews,
			Facilities:       pq.StringArray(seed.Facilities),
			Vibes:            pq.StringArray(seed.Vibes),
			SortOrder:        seed.SortOrder,
			IsActive:         true,
		}
		if err := db.DB.Create(&spot).Error; err != nil {
			return fmt.Errorf("insert featured spot %s: %w", id, err)
		}
		created++
	}

	log.Printf("Featured spots seeded: %d created, %d already present", created, skipped)
	return nil
}
