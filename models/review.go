package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a public customer review, optionally tied to a destination.
type Review struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Rating        int            `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment       string         `gorm:"type:text;not null" json:"comment"`
	DestinationID *uint          `gorm:"index" json:"destination_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
