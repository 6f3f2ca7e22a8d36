package models

import (
	"database/sql/driver"
	"time"
)

// AppSettingsID is the id of the single settings row.
const AppSettingsID uint = 1

// HeroSlide is one slide of the homepage hero carousel.
type HeroSlide struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
}

// HeroSlides is stored as a JSONB column on app_settings.
type HeroSlides []HeroSlide

func (s HeroSlides) Value() (driver.Value, error) {
	if s == nil {
		return jsonbValue([]HeroSlide{})
	}
	return jsonbValue([]HeroSlide(s))
}

func (s *HeroSlides) Scan(value interface{}) error {
	return jsonbScan(s, value)
}

// AppSettings is the site-wide configuration singleton: branding, contact
// details and the bank account payments are transferred to.
type AppSettings struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Theme             string     `gorm:"not null;default:'light'" json:"theme"` // light, dark
	AccentColor       string     `json:"accent_color"`
	BrandName         string     `json:"brand_name"`
	Tagline           string     `json:"tagline"`
	LogoLightURL      string     `json:"logo_light_url"`
	LogoDarkURL       string     `json:"logo_dark_url"`
	Email             string     `json:"email"`
	Address           string     `json:"address"`
	WhatsappNumber    string     `json:"whatsapp_number"`
	FacebookURL       string     `json:"facebook_url"`
	InstagramURL      string     `json:"instagram_url"`
	TwitterURL        string     `json:"twitter_url"`
	BankName          string     `json:"bank_name"`
	BankAccountNumber string     `json:"bank_account_number"`
	BankAccountHolder string     `json:"bank_account_holder"`
	HeroSlides        HeroSlides `gorm:"type:jsonb" json:"hero_slides"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the AppSettings model
func (AppSettings) TableName() string {
	return "app_settings"
}

// DefaultAppSettings is returned before an operator has ever saved settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		ID:        AppSettingsID,
		Theme:     "light",
		BrandName: "Samudra Tours",
		Tagline:   "Explore the archipelago",
	}
}
