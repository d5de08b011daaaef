package models

import (
	"time"

	"praxis/core/types"

	"gorm.io/gorm"
)

// Case represents a legal matter handled by the firm.
type Case struct {
	Id           uint           `json:"id" gorm:"primarykey"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"index"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Number       string         `json:"number" gorm:"size:64;uniqueIndex"`
	Title        string         `json:"title" gorm:"size:255;not null"`
	Description  string         `json:"description"`
	Status       string         `json:"status" gorm:"size:32;index;default:open"` // open, pending, closed, deleted
	Priority     string         `json:"priority" gorm:"size:32;index"`
	PracticeArea string         `json:"practice_area" gorm:"size:64;index"`
	OpenedAt     types.DateTime `json:"opened_at"`
	ClientId     uint           `json:"client_id" gorm:"index"`
	Client       *Client        `json:"client,omitempty" gorm:"foreignKey:ClientId;references:Id"`
	AssigneeId   uint           `json:"assignee_id" gorm:"index"`
	Assignee     *User          `json:"assignee,omitempty" gorm:"foreignKey:AssigneeId;references:Id"`
	CreatedById  uint           `json:"created_by_id" gorm:"index"`
}

// TableName returns the table name for the Case model
func (m *Case) TableName() string {
	return "cases"
}

// GetId returns the Id of the model
func (m *Case) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Case) GetModelName() string {
	return "case"
}

// CaseModelResponse represents a simplified response when this model is part of other entities
type CaseModelResponse struct {
	Id    uint   `json:"id"`
	Title string `json:"title"`
}

// Preload loads the Case relationships
func (m *Case) Preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Client").Preload("Assignee")
}

// CreateCaseRequest represents the request payload for creating a Case
type CreateCaseRequest struct {
	Number       string         `json:"number" binding:"required"`
	Title        string         `json:"title" binding:"required"`
	Description  string         `json:"description"`
	Status       string         `json:"status" binding:"omitempty,oneof=open pending closed"`
	Priority     string         `json:"priority"`
	PracticeArea string         `json:"practice_area"`
	OpenedAt     types.DateTime `json:"opened_at"`
	ClientId     uint           `json:"client_id" binding:"required"`
	AssigneeId   uint           `json:"assignee_id"`
	CreatedById  uint           `json:"created_by_id"`
}

// UpdateCaseRequest represents the request payload for updating a Case
type UpdateCaseRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Status       string         `json:"status" binding:"omitempty,oneof=open pending closed deleted"`
	Priority     string         `json:"priority"`
	PracticeArea string         `json:"practice_area"`
	OpenedAt     types.DateTime `json:"opened_at"`
	ClientId     uint           `json:"client_id"`
	AssigneeId   uint           `json:"assignee_id"`
}
