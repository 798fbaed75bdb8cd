package server

import (
	"net/http"
	"strings"
)

// BasicRouter implements [Router] on top of [http.ServeMux], layering the
// registered [Middleware] stack over every handler it mounts.
type BasicRouter struct {
	mux         *http.ServeMux
	middlewares []Middleware
}

// NewBasicRouter creates an empty [BasicRouter].
func NewBasicRouter() *BasicRouter {
	return &BasicRouter{
		mux:         http.NewServeMux(),
		middlewares: []Middleware{},
	}
}

// Use appends [Middleware] to the stack. Ordering matters: middleware added
// first sees the request first.
func (rt *BasicRouter) Use(middleware ...Middleware) {
	rt.middlewares = append(rt.middlewares, middleware...)
}

// Handle mounts an [http.Handler] at path, restricted to the given HTTP
// method. Requests arriving with any other method get a 405.
func (rt *BasicRouter) Handle(method, path string, handler http.Handler) {
	wrapped := rt.Apply(handler)

	rt.mux.Handle(path, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.EqualFold(req.Method, method) {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		wrapped.ServeHTTP(w, req)
	}))
}

// Handler mounts a [Handler] at every pattern it reports via [Handler.Routes].
// Method dispatch is left to the handler itself, which is how [RFPHandler]
// serves both the collection and single-record patterns.
func (rt *BasicRouter) Handler(handler Handler) {
	wrapped := rt.Apply(handler)

	for _, pattern := range handler.Routes() {
		rt.mux.Handle(pattern, wrapped)
	}
}

// ServeHTTP makes the router itself mountable as an [http.Handler], e.g.
// under the CORS wrapper in the serve command.
func (rt *BasicRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rt.mux.ServeHTTP(w, req)
}

// Apply wraps handler in the middleware stack, innermost last, so the first
// registered middleware runs first.
func (rt *BasicRouter) Apply(handler http.Handler) http.Handler {
	for i := len(rt.middlewares) - 1; i >= 0; i-- {
		handler = rt.middlewares[i](handler)
	}
	return handler
}
