package module

import (
	"fmt"
	"sync"

	"praxis/core/cache"
	"praxis/core/config"
	"praxis/core/emitter"
	"praxis/core/logger"
	"praxis/core/router"
	"praxis/core/storage"

	"gorm.io/gorm"
)

// Module is the minimal contract every application module satisfies.
// Optional capabilities (Init, Migrate, Routes) are discovered by the
// initializer via interface assertion.
type Module interface {
	ModuleName() string
}

// Dependencies carries the shared infrastructure injected into modules.
type Dependencies struct {
	DB      *gorm.DB
	Router  *router.RouterGroup
	Logger  logger.Logger
	Emitter *emitter.Emitter
	Storage *storage.ActiveStorage
	Cache   cache.Store
	Config  *config.Config
}

// DefaultModule provides a no-op base modules can embed.
type DefaultModule struct{}

func (DefaultModule) ModuleName() string { return "" }

var (
	registryMu sync.Mutex
	registry   = make(map[string]Module)
)

// RegisterModule records a module under a unique name.
func RegisterModule(name string, mod Module) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		return fmt.Errorf("module already registered: %s", name)
	}
	registry[name] = mod
	return nil
}

// GetModule returns a registered module by name.
func GetModule(name string) (Module, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	mod, ok := registry[name]
	return mod, ok
}

// Initializer runs the lifecycle (register, init, migrate, routes) over a
// set of modules.
type Initializer struct {
	logger logger.Logger
}

// NewInitializer creates an Initializer.
func NewInitializer(log logger.Logger) *Initializer {
	return &Initializer{logger: log}
}

// Initialize runs the module lifecycle for each module. A module that fails
// a lifecycle step is skipped and logged; the others proceed.
func (i *Initializer) Initialize(modules map[string]Module, deps Dependencies) []Module {
	var initialized []Module

	for name, mod := range modules {
		if err := RegisterModule(name, mod); err != nil {
			i.logger.Error("Failed to register module",
				logger.String("module", name),
				logger.String("error", err.Error()))
			continue
		}

		if initMod, ok := mod.(interface{ Init() error }); ok {
			if err := initMod.Init(); err != nil {
				i.logger.Error("Failed to initialize module",
					logger.String("module", name),
					logger.String("error", err.Error()))
				continue
			}
		}

		if migrator, ok := mod.(interface{ Migrate() error }); ok {
			if err := migrator.Migrate(); err != nil {
				i.logger.Error("Failed to migrate module",
					logger.String("module", name),
					logger.String("error", err.Error()))
				continue
			}
		}

		if routeMod, ok := mod.(interface{ Routes(*router.RouterGroup) }); ok {
			routeMod.Routes(deps.Router)
		}

		initialized = append(initialized, mod)
	}

	return initialized
}
