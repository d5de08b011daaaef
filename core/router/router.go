package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// HandlerFunc is the signature of all route handlers.
type HandlerFunc func(*Context) error

// Middleware wraps a handler with cross-cutting behavior.
type Middleware func(HandlerFunc) HandlerFunc

// Router is the top-level HTTP router. Routing is delegated to chi; handlers
// use the Context abstraction so modules never touch chi directly.
type Router struct {
	mux        chi.Router
	middleware []Middleware
}

// New creates an empty Router.
func New() *Router {
	return &Router{mux: chi.NewRouter()}
}

// Use appends a global middleware. Must be called before registering the
// routes it should apply to.
func (r *Router) Use(mw Middleware) {
	r.middleware = append(r.middleware, mw)
}

// GET registers a GET route at the router root.
func (r *Router) GET(path string, h HandlerFunc) {
	r.mux.Get(convertPattern(path), r.adapt(h, r.middleware))
}

// Group creates a sub-router mounted at prefix.
func (r *Router) Group(prefix string) *RouterGroup {
	return &RouterGroup{
		router:     r,
		prefix:     strings.TrimSuffix(prefix, "/"),
		middleware: append([]Middleware{}, r.middleware...),
	}
}

// Static serves files from dir under the given URL prefix.
func (r *Router) Static(prefix, dir string) {
	prefix = strings.TrimSuffix(prefix, "/")
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	r.mux.Handle(prefix+"/*", fs)
}

// NotFound sets the handler invoked when no route matches.
func (r *Router) NotFound(h HandlerFunc) {
	r.mux.NotFound(r.adapt(h, r.middleware))
}

// Run starts the HTTP server on the given address (":8100").
func (r *Router) Run(addr string) error {
	return http.ListenAndServe(addr, r.mux)
}

// ServeHTTP makes the Router usable directly in tests.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// adapt converts a HandlerFunc plus middleware chain into an http.HandlerFunc.
func (r *Router) adapt(h HandlerFunc, chain []Middleware) http.HandlerFunc {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := newContext(w, req)
		if err := ctx.run(h); err != nil && !ctx.Writer.written {
			_ = ctx.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}
	}
}

// RouterGroup registers routes under a shared prefix and middleware chain.
type RouterGroup struct {
	router     *Router
	prefix     string
	middleware []Middleware
}

// Use appends a middleware for routes registered on this group afterwards.
func (g *RouterGroup) Use(mw Middleware) {
	g.middleware = append(g.middleware, mw)
}

// Group creates a nested group.
func (g *RouterGroup) Group(prefix string) *RouterGroup {
	return &RouterGroup{
		router:     g.router,
		prefix:     g.prefix + strings.TrimSuffix(prefix, "/"),
		middleware: append([]Middleware{}, g.middleware...),
	}
}

func (g *RouterGroup) handle(method, path string, h HandlerFunc) {
	full := g.prefix + path
	if full == "" {
		full = "/"
	}
	g.router.mux.Method(method, convertPattern(full), g.router.adapt(h, g.middleware))
}

func (g *RouterGroup) GET(path string, h HandlerFunc)    { g.handle(http.MethodGet, path, h) }
func (g *RouterGroup) POST(path string, h HandlerFunc)   { g.handle(http.MethodPost, path, h) }
func (g *RouterGroup) PUT(path string, h HandlerFunc)    { g.handle(http.MethodPut, path, h) }
func (g *RouterGroup) DELETE(path string, h HandlerFunc) { g.handle(http.MethodDelete, path, h) }

// convertPattern translates ":param" and "*name" path segments into chi's
// "{param}" and "*" syntax.
func convertPattern(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		switch {
		case strings.HasPrefix(seg, ":"):
			segments[i] = "{" + seg[1:] + "}"
		case strings.HasPrefix(seg, "*"):
			segments[i] = "*"
		}
	}
	return strings.Join(segments, "/")
}
