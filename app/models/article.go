package models

import (
	"time"

	"praxis/core/types"

	"gorm.io/gorm"
)

// Article represents a knowledge-base or website content entry.
type Article struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"index"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Slug        string         `json:"slug" gorm:"size:255;uniqueIndex"`
	Summary     string         `json:"summary"`
	Body        string         `json:"body"`
	Category    string         `json:"category" gorm:"size:64;index"`
	Tags        string         `json:"tags"`
	Status      string         `json:"status" gorm:"size:32;index;default:draft"` // draft, review, published
	AuthorId    uint           `json:"author_id" gorm:"index"`
	Author      *User          `json:"author,omitempty" gorm:"foreignKey:AuthorId;references:Id"`
	PublishedAt types.DateTime `json:"published_at"`
}

// TableName returns the table name for the Article model
func (m *Article) TableName() string {
	return "articles"
}

// GetId returns the Id of the model
func (m *Article) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Article) GetModelName() string {
	return "article"
}
