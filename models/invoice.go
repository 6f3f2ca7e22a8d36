package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice is a shareable bill for an order. The total is always taken from
// the order row at creation time, never from the requesting client.
type Invoice struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	OrderID    int64          `gorm:"not null;index" json:"order_id"`
	Total      float64        `gorm:"not null" json:"total"`
	ShareToken string         `gorm:"uniqueIndex;not null" json:"share_token"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
