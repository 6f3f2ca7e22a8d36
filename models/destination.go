package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// ItineraryDay is one day of a destination's travel plan.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Itinerary is stored as a JSONB column on destinations.
type Itinerary []ItineraryDay

func (i Itinerary) Value() (driver.Value, error) {
	if i == nil {
		return jsonbValue([]ItineraryDay{})
	}
	return jsonbValue([]ItineraryDay(i))
}

func (i *Itinerary) Scan(value interface{}) error {
	return jsonbScan(i, value)
}

// Destination represents one bookable travel package in the catalog.
type Destination struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title           string         `gorm:"not null" json:"title"`
	PriceTiers      PriceTiers     `gorm:"type:jsonb" json:"price_tiers"`
	Duration        int            `gorm:"not null;default:1" json:"duration"` // days
	MinPeople       int            `gorm:"not null;default:1;check:min_people > 0" json:"min_people"`
	ImageURL        string         `json:"image_url"`
	ImageKey        string         `json:"image_key"` // CDN object key, kept for asset lifecycle
	GalleryImages   StringList     `gorm:"type:jsonb" json:"gallery_images"`
	GalleryKeys     StringList     `gorm:"type:jsonb" json:"gallery_keys"`
	LongDescription string         `gorm:"type:text" json:"long_description"`
	Itinerary       Itinerary      `gorm:"type:jsonb" json:"itinerary"`
	MapLat          float64        `json:"map_lat"`
	MapLng          float64        `json:"map_lng"`
	Facilities      StringList     `gorm:"type:jsonb" json:"facilities"`
	Categories      StringList     `gorm:"type:jsonb" json:"categories"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Destination model
func (Destination) TableName() string {
	return "destinations"
}

// AssetKeys lists every CDN object key the destination owns.
func (d *Destination) AssetKeys() []string {
	keys := make([]string, 0, len(d.GalleryKeys)+1)
	if d.ImageKey != "" {
		keys = append(keys, d.ImageKey)
	}
	keys = append(keys, d.GalleryKeys...)
	return keys
}
