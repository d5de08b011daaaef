package search

import (
	"praxis/app/models"
	"praxis/core/module"
	"praxis/core/router"
)

type Module struct {
	module.DefaultModule
	Service    *SearchService
	Controller *SearchController
	deps       module.Dependencies
}

// Init creates the search module: the adapter registry, the suggestion and
// analytics components and the aggregation service on top of them.
func Init(deps module.Dependencies) module.Module {
	registry := RegisterAdapters(deps.DB, deps.Logger)

	suggestions := NewSuggestionEngine(
		deps.DB,
		deps.Cache,
		deps.Logger,
		deps.Config.SuggestCacheTTL,
		deps.Config.PopularTermDays,
	)
	recorder := NewAnalyticsRecorder(deps.DB, deps.Logger)

	service := NewSearchService(
		deps.Emitter,
		deps.Logger,
		registry,
		deps.Cache,
		suggestions,
		recorder,
		deps.Config.AdapterTimeout,
		deps.Config.EntityFetchCap,
		deps.Config.SearchCacheTTL,
	)
	controller := NewSearchController(service, deps.Logger)

	return &Module{
		Service:    service,
		Controller: controller,
		deps:       deps,
	}
}

func (m *Module) ModuleName() string { return "search" }

// Migrate creates the searched entity tables and the analytics tables.
func (m *Module) Migrate() error {
	return m.deps.DB.AutoMigrate(
		&models.Case{},
		&models.Client{},
		&models.Document{},
		&models.User{},
		&models.Expense{},
		&models.Article{},
		&models.Task{},
		&models.Invoice{},
		&models.TimeEntry{},
		&models.SearchQuery{},
		&models.SearchTerm{},
	)
}

// Routes registers the search endpoints.
func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}
