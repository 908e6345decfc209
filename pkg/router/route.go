package router

import "github.com/zaoinc/rustnext/pkg/server"

// Route binds an HTTP method and a compiled pattern to a terminal handler.
// Routes are created during bootstrap and immutable afterwards.
type Route struct {
	// Method is the exact HTTP method the route answers. There is no verb
	// aliasing; "GET" does not match HEAD.
	Method string

	// Pattern is the compiled path template.
	Pattern *Pattern

	// Handler is the terminal handler, innermost in the middleware chain.
	Handler server.Handler
}

// NewRoute compiles template and builds a Route. It panics on an invalid
// template, which is a configuration bug, not a request-time condition.
func NewRoute(method, template string, h server.Handler) Route {
	return Route{
		Method:  method,
		Pattern: MustCompile(template),
		Handler: h,
	}
}
