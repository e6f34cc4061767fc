package spots

import (
	"log"
	"strings"
	"sync"

	"github.com/badekart/badekart-backend/internal/db"
)

// Defaults applied when a community submitter left an enrichment field unset.
const (
	DefaultWaterTemperature = 18.0
	DefaultWaterQuality     = "Good"
	DefaultCrowdLevel       = "Moderate"
	DefaultPartyLevel       = "Chill"
)

var (
	defaultFacilities = []string{"Community Submitted"}
	defaultVibes      = []string{"Community Favorite", "Hidden Gem"}
)

// communityIDPrefix namespaces community spot ids in the unified listing so a
// single id string can address either store.
const communityIDPrefix = "community-"

// UnifiedSpot is the merged read model served to the frontend. It is computed
// fresh on every listing request and never persisted; exactly one of
// IsCommunitySpot / IsFeaturedSpot is true.
type UnifiedSpot struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Location         string      `json:"location"`
	Description      string      `json:"description"`
	WaterTemperature float64     `json:"waterTemperature"`
	WaterQuality     string      `json:"waterQuality"`
	CrowdLevel       string      `json:"crowdLevel"`
	PartyLevel       string      `json:"partyLevel"`
	BYOBFriendly     bool        `json:"byobFriendly"`
	SunsetViews      bool        `json:"sunsetViews"`
	LastUpdated      string      `json:"lastUpdated"`
	ImageURL         string      `json:"imageUrl"`
	Facilities       []string    `json:"facilities"`
	Coordinates      Coordinates `json:"coordinates"`
	Vibes            []string    `json:"vibes"`
	IsCommunitySpot  bool        `json:"isCommunitySpot"`
	CommunitySpotID  string      `json:"communitySpotId,omitempty"`
	SubmittedBy      string      `json:"submittedBy,omitempty"`
	IsFeaturedSpot   bool        `json:"isFeaturedSpot"`
	FeaturedSpotID   string      `json:"featuredSpotId,omitempty"`
}

// CommunityID returns the unified listing id for a community spot row id.
func CommunityID(rowID string) string {
	return communityIDPrefix + rowID
}

func convertFeatured(spot FeaturedSpot) UnifiedSpot {
	return UnifiedSpot{
		ID:               spot.ID,
		Name:             spot.Name,
		Location:         spot.Location,
		Description:      spot.Description,
		WaterTemperature: spot.WaterTemperature,
		WaterQuality:     spot.WaterQuality,
		CrowdLevel:       spot.CrowdLevel,
		PartyLevel:       spot.PartyLevel,
		BYOBFriendly:     spot.BYOBFriendly,
		SunsetViews:      spot.SunsetViews,
		LastUpdated:      spot.LastUpdated,
		ImageURL:         spot.ImageURL,
		Facilities:       spot.Facilities,
		Coordinates:      spot.Coordinates,
		Vibes:            spot.Vibes,
		IsCommunitySpot:  false,
		IsFeaturedSpot:   true,
		FeaturedSpotID:   spot.ID,
	}
}

func convertCommunity(spot CommunitySpot) UnifiedSpot {
	u := UnifiedSpot{
		ID:               CommunityID(spot.ID.String()),
		Name:             spot.Title,
		Location:         spot.Address,
		Description:      spot.Description,
		WaterTemperature: DefaultWaterTemperature,
		WaterQuality:     DefaultWaterQuality,
		CrowdLevel:       DefaultCrowdLevel,
		PartyLevel:       DefaultPartyLevel,
		LastUpdated:      spot.UpdatedAt.Format("02.01.2006"),
		ImageURL:         spot.MainImageURL,
		Facilities:       defaultFacilities,
		Coordinates:      Coordinates{Lat: spot.Coordinates.Lat, Lon: spot.Coordinates.Lng},
		Vibes:            defaultVibes,
		IsCommunitySpot:  true,
		CommunitySpotID:  spot.ID.String(),
		SubmittedBy:      spot.UserID,
		IsFeaturedSpot:   false,
	}

	if spot.WaterTemperature != nil {
		u.WaterTemperature = *spot.WaterTemperature
	}
	if spot.WaterQuality != nil && *spot.WaterQuality != "" {
		u.WaterQuality = *spot.WaterQuality
	}
	if spot.CrowdLevel != nil && *spot.CrowdLevel != "" {
		u.CrowdLevel = *spot.CrowdLevel
	}
	if spot.PartyLevel != nil && *spot.PartyLevel != "" {
		u.PartyLevel = *spot.PartyLevel
	}
	if spot.BYOBFriendly != nil {
		u.BYOBFriendly = *spot.BYOBFriendly
	}
	if spot.SunsetViews != nil {
		u.SunsetViews = *spot.SunsetViews
	}
	if len(spot.Facilities) > 0 {
		u.Facilities = spot.Facilities
	}
	if len(spot.Vibes) > 0 {
		u.Vibes = spot.Vibes
	}

	return u
}

func fetchFeatured() ([]FeaturedSpot, error) {
	var featured []FeaturedSpot
	err := db.DB.Where("is_active = ?", true).Order("sort_order ASC").Find(&featured).Error
	return featured, err
}

func fetchApprovedCommunity() ([]CommunitySpot, error) {
	var community []CommunitySpot
	err := db.DB.Where("status = ?", StatusApproved).Order("approved_at DESC").Find(&community).Error
	return community, err
}

// GetAllSpots merges active featured spots and approved community spots into
// the unified listing: featured first in sort order, then community spots,
// most recently approved first. Either source failing degrades to its group
// being empty rather than failing the listing.
func GetAllSpots() []UnifiedSpot {
	var (
		wg           sync.WaitGroup
		featured     []FeaturedSpot
		community    []CommunitySpot
		featuredErr  error
		communityErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		featured, featuredErr = fetchFeatured()
	}()
	go func() {
		defer wg.Done()
		community, communityErr = fetchApprovedCommunity()
	}()
	wg.Wait()

	if featuredErr != nil {
		log.Printf("[spots] failed to fetch featured spots: %v", featuredErr)
	}
	if communityErr != nil {
		log.Printf("[spots] failed to fetch community spots: %v", communityErr)
	}

	unified := make([]UnifiedSpot, 0, len(featured)+len(community))
	for _, spot := range featured {
		unified = append(unified, convertFeatured(spot))
	}
	for _, spot := range community {
		unified = append(unified, convertCommunity(spot))
	}
	return unified
}

// GetSpotByID resolves a unified listing id: ids with the community- prefix
// are looked up in the community store (prefix stripped), everything else in
// the featured store. Returns ok=false when the row is absent.
func GetSpotByID(id string) (UnifiedSpot, bool) {
	if rowID, isCommunity := strings.CutPrefix(id, communityIDPrefix); isCommunity {
		var spot CommunitySpot
		if err := db.DB.First(&spot, "id = ?", rowID).Error; err != nil {
			return UnifiedSpot{}, false
		}
		return convertCommunity(spot), true
	}

	var spot FeaturedSpot
	if err := db.DB.First(&spot, "id = ?", id).Error; err != nil {
		return UnifiedSpot{}, false
	}
	return convertFeatured(spot), true
}
