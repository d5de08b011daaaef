package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	appmodules "praxis/app"
	"praxis/app/jobs"
	"praxis/app/search"
	"praxis/core/cache"
	"praxis/core/config"
	"praxis/core/database"
	"praxis/core/emitter"
	"praxis/core/logger"
	"praxis/core/module"
	"praxis/core/router"
	"praxis/core/router/middleware"
	"praxis/core/scheduler"
	"praxis/core/storage"

	"github.com/joho/godotenv"
)

// @title Praxis API
// @description Practice management API with unified search across cases, clients, documents and billing
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @version 1.0.0
// @BasePath /api
// @schemes http https
// @accept json
// @produce json
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your token with the prefix "Bearer "

// App wires the application together with simplified initialization.
type App struct {
	config    *config.Config
	db        *database.Database
	router    *router.Router
	logger    logger.Logger
	emitter   *emitter.Emitter
	storage   *storage.ActiveStorage
	cache     cache.Store
	scheduler *scheduler.CronScheduler

	running bool
	verbose bool
}

// New creates a new application instance.
func New() *App {
	verbose := false
	for _, arg := range os.Args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
			break
		}
	}
	return &App{verbose: verbose}
}

// Start initializes and starts the application.
func (app *App) Start() error {
	return app.
		loadEnvironment().
		initConfig().
		initLogger().
		initDatabase().
		initInfrastructure().
		initRouter().
		registerModules().
		setupRoutes().
		displayServerInfo().
		run()
}

// loadEnvironment loads environment variables.
func (app *App) loadEnvironment() *App {
	if err := godotenv.Load(); err != nil {
		// Non-fatal - continue without .env file
	}
	return app
}

// initConfig initializes configuration.
func (app *App) initConfig() *App {
	app.config = config.NewConfig()
	return app
}

// initLogger initializes the logger.
func (app *App) initLogger() *App {
	logConfig := logger.Config{
		Environment: app.config.Env,
		LogPath:     "logs",
		Level:       "debug",
	}

	log, err := logger.NewLogger(logConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	app.logger = log
	return app
}

// initDatabase initializes the database connection.
func (app *App) initDatabase() *App {
	db, err := database.InitDB(app.config)
	if err != nil {
		app.logger.Error("Failed to initialize database", logger.String("error", err.Error()))
		panic(fmt.Sprintf("Database initialization failed: %v", err))
	}

	app.db = db

	if app.verbose {
		app.logger.Info("Database connected", logger.String("driver", app.config.DBDriver))
	}

	return app
}

// initInfrastructure initializes the emitter, result cache and storage.
func (app *App) initInfrastructure() *App {
	app.emitter = emitter.New()
	app.cache = app.openCache()

	storageConfig := storage.Config{
		Provider:  app.config.StorageProvider,
		Path:      app.config.StoragePath,
		BaseURL:   app.config.StorageBaseURL,
		APIKey:    app.config.StorageAPIKey,
		APISecret: app.config.StorageAPISecret,
		Endpoint:  app.config.StorageEndpoint,
		Bucket:    app.config.StorageBucket,
	}

	activeStorage, err := storage.NewActiveStorage(app.db.DB, storageConfig)
	if err != nil {
		app.logger.Error("Failed to initialize storage", logger.String("error", err.Error()))
		panic(fmt.Sprintf("Storage initialization failed: %v", err))
	}
	app.storage = activeStorage

	if app.verbose {
		app.logger.Info("Storage initialized", logger.String("provider", app.config.StorageProvider))
	}

	return app
}

// openCache opens the persistent result cache, falling back to an in-memory
// store when the cache directory is unavailable.
func (app *App) openCache() cache.Store {
	if app.config.CachePath == "" {
		return cache.NewMemoryStore()
	}

	store, err := cache.NewBadgerStore(app.config.CachePath, app.logger)
	if err != nil {
		app.logger.Warn("Persistent cache unavailable, using in-memory cache",
			logger.String("path", app.config.CachePath),
			logger.String("error", err.Error()))
		return cache.NewMemoryStore()
	}

	if app.verbose {
		app.logger.Info("Result cache opened", logger.String("path", app.config.CachePath))
	}
	return store
}

// initRouter initializes the router with middleware.
func (app *App) initRouter() *App {
	app.router = router.New()
	app.setupMiddleware()
	app.setupStaticRoutes()

	if app.verbose {
		app.logger.Info("Router and middleware initialized")
	}

	return app
}

// setupMiddleware configures all global middleware.
func (app *App) setupMiddleware() {
	middleware.ApplyConfigurableMiddleware(app.router, &app.config.Middleware)

	// Request logging, skipping configured paths
	app.router.Use(func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			path := c.Request.URL.Path

			if app.config.Middleware.IsLoggingRequired(path) {
				start := time.Now()
				err := next(c)

				app.logger.Info("Request",
					logger.String("method", c.Request.Method),
					logger.String("path", path),
					logger.Int("status", c.Writer.Status()),
					logger.Duration("duration", time.Since(start)),
					logger.String("ip", c.ClientIP()),
				)
				return err
			}

			return next(c)
		}
	})
}

// setupStaticRoutes configures static file serving.
func (app *App) setupStaticRoutes() {
	app.router.Static("/static", "./static")
	app.router.Static("/storage", "./storage")
}

// registerModules initializes the application modules and the scheduled jobs
// that depend on them.
func (app *App) registerModules() *App {
	deps := module.Dependencies{
		DB:      app.db.DB,
		Router:  app.router.Group("/api"),
		Logger:  app.logger,
		Emitter: app.emitter,
		Storage: app.storage,
		Cache:   app.cache,
		Config:  app.config,
	}

	initializer := module.NewInitializer(app.logger)
	orchestrator := module.NewOrchestrator(initializer)
	initialized := orchestrator.InitializeAppModules(appmodules.NewProvider(), deps)

	if app.verbose {
		app.logger.Info("App modules initialized", logger.Int("count", len(initialized)))
	}

	for _, mod := range initialized {
		if searchModule, ok := mod.(*search.Module); ok {
			cronScheduler := jobs.SetupScheduler(searchModule, app.logger)
			cronScheduler.Start()
			app.scheduler = cronScheduler
			break
		}
	}

	return app
}

// setupRoutes sets up basic system routes.
func (app *App) setupRoutes() *App {
	app.router.GET("/health", func(c *router.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"version": app.config.Version,
		})
	})

	// Check if public directory exists (production with frontend)
	if _, err := os.Stat("./public"); err == nil {
		if app.verbose {
			app.logger.Info("Serving frontend from ./public")
		}

		app.router.GET("/_nuxt/*filepath", func(c *router.Context) error {
			filepath := c.Param("filepath")
			http.ServeFile(c.Writer, c.Request, "./public/_nuxt/"+filepath)
			return nil
		})

		// Serve all other routes with index.html (SPA fallback)
		app.router.NotFound(func(c *router.Context) error {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				return c.JSON(404, map[string]any{
					"error": "Not found",
				})
			}

			http.ServeFile(c.Writer, c.Request, "./public/index.html")
			return nil
		})
	} else {
		app.router.GET("/", func(c *router.Context) error {
			return c.JSON(200, map[string]any{
				"message": "pong",
				"version": app.config.Version,
			})
		})
	}

	return app
}

// displayServerInfo shows server startup information.
func (app *App) displayServerInfo() *App {
	localIP := app.getLocalIP()
	port := app.config.ServerPort

	fmt.Printf("\n\033[1;32mPraxis Ready!\033[0m\n\n")
	fmt.Printf("\033[36mServer URLs:\033[0m\n")
	fmt.Printf("  Local:   http://localhost%s\n", port)
	fmt.Printf("  Network: http://%s%s\n\n", localIP, port)

	return app
}

// getLocalIP gets the local network IP address.
func (app *App) getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "localhost"
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return "localhost"
}

// run starts the HTTP server.
func (app *App) run() error {
	app.running = true
	port := app.config.ServerPort

	if app.verbose {
		app.logger.Info("Server starting", logger.String("port", port))
	}

	err := app.router.Run(port)
	if err != nil {
		if strings.Contains(err.Error(), "bind: address already in use") {
			app.logger.Error("Server failed to start - Port already in use",
				logger.String("port", port),
				logger.String("error", err.Error()))
			return fmt.Errorf("port %s is already in use. Please:\n  • Stop any other servers running on this port\n  • Change the SERVER_PORT in your .env file\n  • Use a different port with: export SERVER_PORT=:8101", port)
		}
		app.logger.Error("Server failed to start",
			logger.String("error", err.Error()))
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Stop halts background jobs. Graceful HTTP shutdown is a future enhancement.
func (app *App) Stop() error {
	if !app.running {
		return nil
	}

	app.logger.Info("Shutting down gracefully...")
	if app.scheduler != nil {
		app.scheduler.Stop()
	}
	app.running = false
	return nil
}

func main() {
	app := New()

	if err := app.Start(); err != nil {
		fmt.Printf("\n\033[31mApplication failed to start:\033[0m\n%v\n\n", err)
		os.Exit(1)
	}
}
