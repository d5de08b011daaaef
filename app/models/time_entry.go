package models

import (
	"time"

	"praxis/core/types"

	"gorm.io/gorm"
)

// TimeEntry represents time recorded against a case for billing.
type TimeEntry struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"index"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Description string         `json:"description" gorm:"size:255;not null"`
	Status      string         `json:"status" gorm:"size:32;index;default:billable"` // billable, non_billable, billed
	Hours       float64        `json:"hours"`
	Rate        float64        `json:"rate"`
	EntryDate   types.DateTime `json:"entry_date"`
	CaseId      uint           `json:"case_id" gorm:"index"`
	Case        *Case          `json:"case,omitempty" gorm:"foreignKey:CaseId;references:Id"`
	UserId      uint           `json:"user_id" gorm:"index"`
}

// TableName returns the table name for the TimeEntry model
func (m *TimeEntry) TableName() string {
	return "time_entries"
}

// GetId returns the Id of the model
func (m *TimeEntry) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *TimeEntry) GetModelName() string {
	return "time_entry"
}
