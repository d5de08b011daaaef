package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration, loaded from environment
// variables. Defaults are suitable for local development with sqlite.
type Config struct {
	Env        string
	Version    string
	ServerPort string

	// Database
	DBDriver string // sqlite, mysql, postgres
	DBPath   string // sqlite file path
	DBHost   string
	DBPort   string
	DBName   string
	DBUser   string
	DBPass   string

	// Cache
	CachePath       string        // badger directory; empty disables the persistent cache
	SearchCacheTTL  time.Duration // search result entries
	SuggestCacheTTL time.Duration // suggestion and popular-term entries

	// Search
	AdapterTimeout  time.Duration // per-entity search timeout
	EntityFetchCap  int           // max rows fetched per entity before merging
	PopularTermDays int           // trailing window for popular terms

	// Storage
	StorageProvider  string
	StoragePath      string
	StorageBaseURL   string
	StorageAPIKey    string
	StorageAPISecret string
	StorageEndpoint  string
	StorageBucket    string

	// Middleware
	Middleware MiddlewareConfig
}

// MiddlewareConfig controls which global middleware is applied.
type MiddlewareConfig struct {
	CORSEnabled        bool
	CORSAllowedOrigins []string
	LoggingSkipPaths   []string
}

// IsLoggingRequired reports whether requests to path should be logged.
func (m *MiddlewareConfig) IsLoggingRequired(path string) bool {
	for _, skip := range m.LoggingSkipPaths {
		if strings.HasPrefix(path, skip) {
			return false
		}
	}
	return true
}

// NewConfig builds a Config from the environment.
func NewConfig() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		Version:    getEnv("APP_VERSION", "1.0.0"),
		ServerPort: normalizePort(getEnv("SERVER_PORT", ":8100")),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBPath:   getEnv("DB_PATH", "praxis.db"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBPort:   getEnv("DB_PORT", "5432"),
		DBName:   getEnv("DB_NAME", "praxis"),
		DBUser:   getEnv("DB_USER", "praxis"),
		DBPass:   getEnv("DB_PASSWORD", ""),

		CachePath:       getEnv("CACHE_PATH", "cache"),
		SearchCacheTTL:  getDurationEnv("SEARCH_CACHE_TTL", 300*time.Second),
		SuggestCacheTTL: getDurationEnv("SUGGEST_CACHE_TTL", 3600*time.Second),

		AdapterTimeout:  getDurationEnv("SEARCH_ADAPTER_TIMEOUT", 2*time.Second),
		EntityFetchCap:  getIntEnv("SEARCH_ENTITY_FETCH_CAP", 100),
		PopularTermDays: getIntEnv("SEARCH_POPULAR_TERM_DAYS", 30),

		StorageProvider:  getEnv("STORAGE_PROVIDER", "local"),
		StoragePath:      getEnv("STORAGE_PATH", "storage"),
		StorageBaseURL:   getEnv("STORAGE_BASE_URL", "/storage"),
		StorageAPIKey:    getEnv("STORAGE_API_KEY", ""),
		StorageAPISecret: getEnv("STORAGE_API_SECRET", ""),
		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", ""),

		Middleware: MiddlewareConfig{
			CORSEnabled:        getBoolEnv("CORS_ENABLED", true),
			CORSAllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
			LoggingSkipPaths:   strings.Split(getEnv("LOGGING_SKIP_PATHS", "/health,/static,/storage"), ","),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// normalizePort ensures the port has a leading colon.
func normalizePort(port string) string {
	if port == "" {
		return ":8100"
	}
	if !strings.HasPrefix(port, ":") {
		return ":" + port
	}
	return port
}
