package router

import (
	"context"

	"github.com/zaoinc/rustnext/pkg/server"
)

// Middleware wraps a handler with cross-cutting behavior. It receives the
// request and the rest of the chain as next, and may:
//
//   - short-circuit: return a response or error without calling next;
//   - pass through: return next's result verbatim;
//   - observe or transform: call next, then adjust the response;
//   - mutate the request before forwarding it inward.
//
// A single middleware instance is shared by every in-flight request; any
// mutable state it owns must be guarded by a lock.
type Middleware interface {
	Handle(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error)
}

// MiddlewareFunc is a function adapter for Middleware.
type MiddlewareFunc func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error)

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
	return f(ctx, req, next)
}

// Compose folds mw around terminal so that mw[0] is outermost: it runs first
// on the way in and last on the way out. The fold is plain pointer
// composition, O(len(mw)) with no middleware state duplicated.
func Compose(mw []Middleware, terminal server.Handler) server.Handler {
	h := terminal
	for i := len(mw) - 1; i >= 0; i-- {
		m, next := mw[i], h
		h = server.HandlerFunc(func(ctx context.Context, req *server.Request) (*server.Response, error) {
			return m.Handle(ctx, req, next)
		})
	}
	return h
}

// Chain combines several middleware into one, preserving their order.
func Chain(mw ...Middleware) Middleware {
	return MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		return Compose(mw, next).Handle(ctx, req)
	})
}

// Skip bypasses m for requests where condition holds.
func Skip(condition func(req *server.Request) bool, m Middleware) Middleware {
	return MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		if condition(req) {
			return next.Handle(ctx, req)
		}
		return m.Handle(ctx, req, next)
	})
}

// Only applies m solely to requests where condition holds.
func Only(condition func(req *server.Request) bool, m Middleware) Middleware {
	return MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		if !condition(req) {
			return next.Handle(ctx, req)
		}
		return m.Handle(ctx, req, next)
	})
}
