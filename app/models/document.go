package models

import (
	"time"

	"praxis/core/storage"

	"gorm.io/gorm"
)

// Document represents a file stored against a case or client.
type Document struct {
	Id           uint                `json:"id" gorm:"primarykey"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at" gorm:"index"`
	DeletedAt    gorm.DeletedAt      `json:"deleted_at" gorm:"index"`
	Title        string              `json:"title" gorm:"size:255;not null"`
	Description  string              `json:"description"`
	FileName     string              `json:"file_name" gorm:"size:255"`
	FileSize     int64               `json:"file_size"`
	Category     string              `json:"category" gorm:"size:64;index"` // pleading, contract, correspondence, evidence
	Tags         string              `json:"tags"`
	IsDeleted    bool                `json:"is_deleted" gorm:"index;default:false"`
	CaseId       uint                `json:"case_id" gorm:"index"`
	Case         *Case               `json:"case,omitempty" gorm:"foreignKey:CaseId;references:Id"`
	ClientId     uint                `json:"client_id" gorm:"index"`
	Client       *Client             `json:"client,omitempty" gorm:"foreignKey:ClientId;references:Id"`
	UploadedById uint                `json:"uploaded_by_id" gorm:"index"`
	File         *storage.Attachment `json:"file,omitempty" gorm:"foreignKey:ModelId;references:Id"`
}

// TableName returns the table name for the Document model
func (m *Document) TableName() string {
	return "documents"
}

// GetId returns the Id of the model
func (m *Document) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Document) GetModelName() string {
	return "document"
}

// Preload loads the Document relationships
func (m *Document) Preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Case").Preload("Client").Preload("File")
}

// CreateDocumentRequest represents the request payload for creating a Document
type CreateDocumentRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"omitempty,oneof=pleading contract correspondence evidence"`
	Tags         string `json:"tags"`
	CaseId       uint   `json:"case_id"`
	ClientId     uint   `json:"client_id"`
	UploadedById uint   `json:"uploaded_by_id"`
}

// UpdateDocumentRequest represents the request payload for updating a Document
type UpdateDocumentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"omitempty,oneof=pleading contract correspondence evidence"`
	Tags        string `json:"tags"`
	CaseId      uint   `json:"case_id"`
	ClientId    uint   `json:"client_id"`
}
