package router

import (
	"encoding/json"
	"mime/multipart"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ResponseWriter wraps http.ResponseWriter and records the response status.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *ResponseWriter) WriteHeader(status int) {
	w.status = status
	w.written = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.status = http.StatusOK
		w.written = true
	}
	return w.ResponseWriter.Write(b)
}

// Status returns the response status code, or 200 if none was set explicitly.
func (w *ResponseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Context carries the request, response writer and per-request values
// through the handler chain.
type Context struct {
	Request *http.Request
	Writer  *ResponseWriter

	values map[string]any
}

func newContext(w http.ResponseWriter, req *http.Request) *Context {
	return &Context{
		Request: req,
		Writer:  &ResponseWriter{ResponseWriter: w},
		values:  make(map[string]any),
	}
}

func (c *Context) run(h HandlerFunc) error {
	return h(c)
}

// JSON writes a JSON response with the given status code.
func (c *Context) JSON(status int, v any) error {
	c.Writer.Header().Set("Content-Type", "application/json")
	c.Writer.WriteHeader(status)
	return json.NewEncoder(c.Writer).Encode(v)
}

// Redirect sends an HTTP redirect.
func (c *Context) Redirect(status int, url string) error {
	http.Redirect(c.Writer, c.Request, url, status)
	return nil
}

// Query returns a URL query parameter.
func (c *Context) Query(key string) string {
	return c.Request.URL.Query().Get(key)
}

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	if v := chi.URLParam(c.Request, key); v != "" {
		return v
	}
	// Catch-all routes expose their match under "*".
	return chi.URLParam(c.Request, "*")
}

// Set stores a per-request value.
func (c *Context) Set(key string, value any) {
	c.values[key] = value
}

// Get retrieves a per-request value.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// GetUint retrieves a per-request value as uint, or 0.
func (c *Context) GetUint(key string) uint {
	switch v, _ := c.Get(key); t := v.(type) {
	case uint:
		return t
	case int:
		return uint(t)
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return uint(n)
		}
	}
	return 0
}

// ShouldBind decodes the JSON request body into v and validates it using
// the struct's binding tags.
func (c *Context) ShouldBind(v any) error {
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := json.NewDecoder(c.Request.Body).Decode(v); err != nil {
			return err
		}
	}
	return validate.Struct(v)
}

// FormFile returns the uploaded file for the given form field.
func (c *Context) FormFile(name string) (*multipart.FileHeader, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return nil, err
	}
	_, header, err := c.Request.FormFile(name)
	return header, err
}

// ClientIP returns the originating client address, honoring proxy headers.
func (c *Context) ClientIP() string {
	if fwd := c.Request.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	if real := c.Request.Header.Get("X-Real-Ip"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
