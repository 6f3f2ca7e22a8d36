package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost represents one article on the public blog.
type BlogPost struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string         `gorm:"not null" json:"title"`
	ImageURL    string         `json:"image_url"`
	ImageKey    string         `json:"image_key"` // CDN object key, kept for asset lifecycle
	Category    string         `json:"category"`
	Author      string         `json:"author"`
	PublishedAt time.Time      `json:"published_at"`
	Content     string         `gorm:"type:text" json:"content"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the BlogPost model
func (BlogPost) TableName() string {
	return "blog_posts"
}
