package module

// CoreModuleProvider supplies framework-level modules (scheduler, ...).
type CoreModuleProvider interface {
	GetCoreModules(deps Dependencies) map[string]Module
}

// AppModuleProvider supplies application modules (search, ...).
type AppModuleProvider interface {
	GetAppModules(deps Dependencies) map[string]Module
}

// Orchestrator drives the lifecycle of a provider's modules.
type Orchestrator struct {
	initializer *Initializer
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(initializer *Initializer) *Orchestrator {
	return &Orchestrator{initializer: initializer}
}

// InitializeCoreModules initializes all modules from a core provider.
func (o *Orchestrator) InitializeCoreModules(provider CoreModuleProvider, deps Dependencies) []Module {
	modules := provider.GetCoreModules(deps)
	if len(modules) == 0 {
		return nil
	}
	return o.initializer.Initialize(modules, deps)
}

// InitializeAppModules initializes all modules from an app provider.
func (o *Orchestrator) InitializeAppModules(provider AppModuleProvider, deps Dependencies) []Module {
	modules := provider.GetAppModules(deps)
	if len(modules) == 0 {
		return nil
	}
	return o.initializer.Initialize(modules, deps)
}
