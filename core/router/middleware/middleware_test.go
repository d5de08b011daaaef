package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"praxis/core/config"
	"praxis/core/router"

	"github.com/stretchr/testify/assert"
)

func newConfiguredRouter(cfg *config.MiddlewareConfig) *router.Router {
	r := router.New()
	ApplyConfigurableMiddleware(r, cfg)
	r.GET("/ping", func(c *router.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"message": "pong"})
	})
	return r
}

func TestApplyConfigurableMiddlewareEnablesCORS(t *testing.T) {
	r := newConfiguredRouter(&config.MiddlewareConfig{
		CORSEnabled:        true,
		CORSAllowedOrigins: []string{"https://app.example.com"},
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestApplyConfigurableMiddlewareRejectsUnknownOrigin(t *testing.T) {
	r := newConfiguredRouter(&config.MiddlewareConfig{
		CORSEnabled:        true,
		CORSAllowedOrigins: []string{"https://app.example.com"},
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestApplyConfigurableMiddlewareCORSDisabled(t *testing.T) {
	r := newConfiguredRouter(&config.MiddlewareConfig{CORSEnabled: false})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestApplyConfigurableMiddlewareRecoversPanics(t *testing.T) {
	r := router.New()
	ApplyConfigurableMiddleware(r, &config.MiddlewareConfig{})
	r.GET("/boom", func(c *router.Context) error {
		panic("handler exploded")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
