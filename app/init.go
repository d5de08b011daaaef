package app

import (
	"praxis/app/cases"
	"praxis/app/documents"
	"praxis/app/search"
	"praxis/core/module"
)

// Provider supplies the application modules.
type Provider struct{}

func NewProvider() *Provider { return &Provider{} }

// GetAppModules returns the application modules keyed by name.
func (p *Provider) GetAppModules(deps module.Dependencies) map[string]module.Module {
	return map[string]module.Module{
		"cases":     cases.Init(deps),
		"documents": documents.Init(deps),
		"search":    search.Init(deps),
	}
}
