package router

import (
	"context"
	"net/http"

	"github.com/zaoinc/rustnext/pkg/server"
)

// Router owns an ordered route table and an ordered middleware list.
//
// Routes are matched in registration order and the first match wins. A broad
// pattern registered before a narrow one shadows it, so register specific
// routes first. Middleware registered via Use wraps every matched handler,
// first-registered outermost.
//
// Registration happens during bootstrap from a single goroutine; after the
// server starts the router is read-only and safely shared by any number of
// concurrent requests.
type Router struct {
	routes     []Route
	middleware []Middleware
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Handle registers a route for method and template. It returns the router for
// chaining.
func (r *Router) Handle(method, template string, h server.Handler) *Router {
	r.routes = append(r.routes, NewRoute(method, template, h))
	return r
}

// Get registers a GET route.
func (r *Router) Get(template string, h server.Handler) *Router {
	return r.Handle(http.MethodGet, template, h)
}

// Post registers a POST route.
func (r *Router) Post(template string, h server.Handler) *Router {
	return r.Handle(http.MethodPost, template, h)
}

// Put registers a PUT route.
func (r *Router) Put(template string, h server.Handler) *Router {
	return r.Handle(http.MethodPut, template, h)
}

// Delete registers a DELETE route.
func (r *Router) Delete(template string, h server.Handler) *Router {
	return r.Handle(http.MethodDelete, template, h)
}

// Use appends middleware to the chain wrapped around every matched handler.
// Registration order is execution order on the inbound path.
func (r *Router) Use(mw ...Middleware) *Router {
	r.middleware = append(r.middleware, mw...)
	return r
}

// Dispatch finds the first route whose method and pattern match the request,
// writes the captured path parameters into the request (overwriting
// same-named values), folds the middleware list around the route's handler
// and invokes the chain once.
//
// When nothing matches, including a path that matches only under another
// method, Dispatch returns a not-found error naming the path. Handler and
// middleware errors propagate unchanged; the router never catches, retries or
// rewrites them.
func (r *Router) Dispatch(ctx context.Context, req *server.Request) (*server.Response, error) {
	for i := range r.routes {
		rt := &r.routes[i]
		if rt.Method != req.Method {
			continue
		}
		params, ok := rt.Pattern.Match(req.Path)
		if !ok {
			continue
		}
		for name, value := range params {
			req.SetParam(name, value)
		}
		return Compose(r.middleware, rt.Handler).Handle(ctx, req)
	}
	return nil, server.NotFound("no route for %s", req.Path)
}
