package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Config holds the active storage configuration.
type Config struct {
	Provider  string // "local" or "s3"
	Path      string
	BaseURL   string
	APIKey    string
	APISecret string
	Endpoint  string
	Bucket    string
	Region    string
}

// Attachment is a stored file linked to a model field.
type Attachment struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	ModelType string         `json:"model_type" gorm:"index"`
	ModelId   uint           `json:"model_id" gorm:"index"`
	Field     string         `json:"field"`
	Filename  string         `json:"filename"`
	Path      string         `json:"path"`
	URL       string         `json:"url"`
	Size      int64          `json:"size"`
}

func (Attachment) TableName() string {
	return "attachments"
}

// Attachable is implemented by models that can carry file attachments.
type Attachable interface {
	GetId() uint
	GetModelName() string
}

// AttachmentConfig declares the upload rules for one model field.
type AttachmentConfig struct {
	Field             string
	Path              string
	AllowedExtensions []string
	MaxFileSize       int64
}

// UploadConfig is the per-upload parameterization passed to providers.
type UploadConfig struct {
	AllowedExtensions []string
	MaxFileSize       int64
	UploadPath        string
}

// UploadResult describes a completed upload.
type UploadResult struct {
	Filename string
	Path     string
	Size     int64
}

// Provider is a storage backend (local disk, S3).
type Provider interface {
	Upload(file *multipart.FileHeader, config UploadConfig) (*UploadResult, error)
	UploadBytes(data []byte, filename string, config UploadConfig) (*UploadResult, error)
	Delete(path string) error
	GetURL(path string) string
}

// generateUniqueFilename prefixes the original name with a random token so
// repeated uploads of the same document never collide.
func generateUniqueFilename(original string) string {
	token := make([]byte, 8)
	if _, err := rand.Read(token); err != nil {
		return fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeFilename(original))
	}
	return hex.EncodeToString(token) + "_" + sanitizeFilename(original)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
