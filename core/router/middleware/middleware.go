package middleware

import (
	"net/http"
	"strings"

	"praxis/core/config"
	"praxis/core/router"
)

// ApplyConfigurableMiddleware installs the middleware selected by config.
// Recovery is always on; CORS follows the config flags.
func ApplyConfigurableMiddleware(r *router.Router, cfg *config.MiddlewareConfig) {
	r.Use(Recovery())
	if cfg.CORSEnabled {
		r.Use(CORSMiddleware(cfg.CORSAllowedOrigins))
	}
}

// Recovery converts handler panics into 500 responses.
func Recovery() router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = c.JSON(http.StatusInternalServerError, map[string]any{
						"error": "internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}

// CORSMiddleware allows cross-origin requests from the given origins.
// An empty or "*" list allows any origin.
func CORSMiddleware(allowedOrigins []string) router.Middleware {
	allowAll := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if strings.TrimSpace(o) == "*" {
			allowAll = true
		}
	}

	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			origin := c.Request.Header.Get("Origin")
			if origin != "" {
				allowed := allowAll
				for _, o := range allowedOrigins {
					if strings.EqualFold(strings.TrimSpace(o), origin) {
						allowed = true
						break
					}
				}
				if allowed {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Api-Key")
				}
			}

			if c.Request.Method == http.MethodOptions {
				c.Writer.WriteHeader(http.StatusNoContent)
				return nil
			}
			return next(c)
		}
	}
}
