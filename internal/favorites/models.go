package favorites

import (
	"time"

	"github.com/google/uuid"
)

// Favorite snapshots the spot's name and water temperature at the time it
// was saved so the list endpoint needs no join. The snapshot is not
// refreshed if the spot changes later.
type Favorite struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID           string    `gorm:"not null;uniqueIndex:idx_user_spot" json:"user_id"`
	SpotID           string    `gorm:"not null;uniqueIndex:idx_user_spot" json:"spot_id"`
	SpotName         string    `json:"spot_name"`
	WaterTemperature float64   `json:"water_temperature"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "spots.favorites"
}
