package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Client represents a person or company the firm represents.
type Client struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"index"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	FirstName   string         `json:"first_name" gorm:"size:255"`
	LastName    string         `json:"last_name" gorm:"size:255"`
	CompanyName string         `json:"company_name" gorm:"size:255"`
	Email       string         `json:"email" gorm:"size:255;index"`
	Phone       string         `json:"phone" gorm:"size:64"`
	Type        string         `json:"type" gorm:"size:32;default:person"` // person, company
	Notes       string         `json:"notes"`
	IsActive    bool           `json:"is_active" gorm:"index"`
	CreatedById uint           `json:"created_by_id" gorm:"index"`
}

// TableName returns the table name for the Client model
func (m *Client) TableName() string {
	return "clients"
}

// GetId returns the Id of the model
func (m *Client) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Client) GetModelName() string {
	return "client"
}

// DisplayName is the client's company name, or personal name for individuals.
func (m *Client) DisplayName() string {
	if m.CompanyName != "" {
		return m.CompanyName
	}
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// ClientModelResponse represents a simplified response when this model is part of other entities
type ClientModelResponse struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}
