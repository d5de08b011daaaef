package cases

import (
	"praxis/app/models"
	"praxis/core/module"
	"praxis/core/router"

	"gorm.io/gorm"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *CaseService
	Controller *CaseController
}

// Init creates and initializes the Case module with all dependencies
func Init(deps module.Dependencies) module.Module {
	service := NewCaseService(deps.DB, deps.Emitter, deps.Logger)
	controller := NewCaseController(service)

	return &Module{
		DB:         deps.DB,
		Service:    service,
		Controller: controller,
	}
}

func (m *Module) ModuleName() string { return "cases" }

// Routes registers the module routes
func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}

func (m *Module) Migrate() error {
	return m.DB.AutoMigrate(&models.Case{})
}

func (m *Module) GetModels() []any {
	return []any{&models.Case{}}
}
