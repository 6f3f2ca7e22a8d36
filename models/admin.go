package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is an operator account. A row in this table is what grants access to
// the admin surface; rows are provisioned out of band, not self-registered.
type Admin struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Auth0ID   string         `gorm:"uniqueIndex;not null" json:"auth0_id"` // Auth0 user ID (from 'sub' claim)
	Name      string         `json:"name"`
	Email     string         `gorm:"uniqueIndex" json:"email"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
