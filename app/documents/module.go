package documents

import (
	"praxis/app/models"
	"praxis/core/module"
	"praxis/core/router"
	"praxis/core/storage"

	"gorm.io/gorm"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *DocumentService
	Controller *DocumentController
	Storage    *storage.ActiveStorage
}

// Init creates and initializes the Document module with all dependencies
func Init(deps module.Dependencies) module.Module {
	service := NewDocumentService(deps.DB, deps.Emitter, deps.Storage, deps.Logger)
	controller := NewDocumentController(service)

	// Declare the upload rules for the document file field
	deps.Storage.RegisterAttachment("document", storage.AttachmentConfig{
		Field:             "file",
		Path:              "documents",
		AllowedExtensions: []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".txt", ".png", ".jpg", ".jpeg"},
		MaxFileSize:       50 << 20, // 50MB
	})

	return &Module{
		DB:         deps.DB,
		Service:    service,
		Controller: controller,
		Storage:    deps.Storage,
	}
}

func (m *Module) ModuleName() string { return "documents" }

// Routes registers the module routes
func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}

func (m *Module) Migrate() error {
	return m.DB.AutoMigrate(&models.Document{}, &storage.Attachment{})
}

func (m *Module) GetModels() []any {
	return []any{&models.Document{}}
}
