package models

import (
	"time"

	"praxis/core/types"

	"gorm.io/gorm"
)

// Task represents an actionable item, usually tied to a case.
type Task struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"index"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description"`
	Status      string         `json:"status" gorm:"size:32;index;default:todo"` // todo, in_progress, done
	Priority    string         `json:"priority" gorm:"size:32;index"`
	DueDate     types.DateTime `json:"due_date"`
	CaseId      uint           `json:"case_id" gorm:"index"`
	Case        *Case          `json:"case,omitempty" gorm:"foreignKey:CaseId;references:Id"`
	AssigneeId  uint           `json:"assignee_id" gorm:"index"`
	Assignee    *User          `json:"assignee,omitempty" gorm:"foreignKey:AssigneeId;references:Id"`
	CreatedById uint           `json:"created_by_id" gorm:"index"`
}

// TableName returns the table name for the Task model
func (m *Task) TableName() string {
	return "tasks"
}

// GetId returns the Id of the model
func (m *Task) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Task) GetModelName() string {
	return "task"
}
