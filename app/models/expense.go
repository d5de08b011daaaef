package models

import (
	"time"

	"praxis/core/types"

	"gorm.io/gorm"
)

// Expense represents a billable or reimbursable cost recorded against a case.
type Expense struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"index"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Description string         `json:"description" gorm:"size:255;not null"`
	Category    string         `json:"category" gorm:"size:64;index"` // filing_fee, travel, expert, copying
	Notes       string         `json:"notes"`
	Amount      float64        `json:"amount"`
	Status      string         `json:"status" gorm:"size:32;index;default:pending"` // pending, approved, billed
	ExpenseDate types.DateTime `json:"expense_date"`
	CaseId      uint           `json:"case_id" gorm:"index"`
	Case        *Case          `json:"case,omitempty" gorm:"foreignKey:CaseId;references:Id"`
	UserId      uint           `json:"user_id" gorm:"index"`
}

// TableName returns the table name for the Expense model
func (m *Expense) TableName() string {
	return "expenses"
}

// GetId returns the Id of the model
func (m *Expense) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Expense) GetModelName() string {
	return "expense"
}
