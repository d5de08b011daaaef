package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a member of the firm (attorney, paralegal, admin).
type User struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"index"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	FirstName string         `json:"first_name" gorm:"size:255"`
	LastName  string         `json:"last_name" gorm:"size:255"`
	Username  string         `json:"username" gorm:"size:255;uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone     string         `json:"phone" gorm:"size:64"`
	Role      string         `json:"role" gorm:"size:32;index"` // attorney, paralegal, admin, staff
	IsActive  bool           `json:"is_active" gorm:"index"`
}

// TableName returns the table name for the User model
func (m *User) TableName() string {
	return "users"
}

// GetId returns the Id of the model
func (m *User) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *User) GetModelName() string {
	return "user"
}

// DisplayName is the user's full name, falling back to the username.
func (m *User) DisplayName() string {
	name := strings.TrimSpace(m.FirstName + " " + m.LastName)
	if name == "" {
		return m.Username
	}
	return name
}

// UserModelResponse represents a simplified response when this model is part of other entities
type UserModelResponse struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}
