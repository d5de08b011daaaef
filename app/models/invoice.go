package models

import (
	"time"

	"praxis/core/types"

	"gorm.io/gorm"
)

// Invoice represents a bill issued to a client.
type Invoice struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"index"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Number      string         `json:"number" gorm:"size:64;uniqueIndex"`
	Notes       string         `json:"notes"`
	Status      string         `json:"status" gorm:"size:32;index;default:draft"` // draft, sent, paid, overdue
	Subtotal    float64        `json:"subtotal"`
	Tax         float64        `json:"tax"`
	Total       float64        `json:"total"`
	IssuedAt    types.DateTime `json:"issued_at"`
	DueAt       types.DateTime `json:"due_at"`
	ClientId    uint           `json:"client_id" gorm:"index"`
	Client      *Client        `json:"client,omitempty" gorm:"foreignKey:ClientId;references:Id"`
	CaseId      uint           `json:"case_id" gorm:"index"`
	Case        *Case          `json:"case,omitempty" gorm:"foreignKey:CaseId;references:Id"`
	CreatedById uint           `json:"created_by_id" gorm:"index"`
}

// TableName returns the table name for the Invoice model
func (m *Invoice) TableName() string {
	return "invoices"
}

// GetId returns the Id of the model
func (m *Invoice) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Invoice) GetModelName() string {
	return "invoice"
}
