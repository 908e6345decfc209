// Package server provides the request/response core shared by every layer of
// a RustNext application.
//
// The central abstraction is Handler: anything that can turn a Request into a
// Response or an error. Endpoint closures, the static file handler, and a
// fully composed middleware chain all satisfy the same interface, so they are
// interchangeable everywhere a Handler is expected:
//
//	type Handler interface {
//	    Handle(ctx context.Context, req *Request) (*Response, error)
//	}
//
// Requests are built once from the inbound *http.Request and then owned by the
// dispatch pipeline; Responses are value builders written back to the network
// at the very end. Errors carry a Kind (not found, bad request, unauthorized,
// forbidden, too many requests, internal) that the application's error handler
// maps to an HTTP status.
//
// # Concurrency
//
// Each inbound request is served on its own goroutine. A Request is owned by
// exactly one goroutine; routers, handlers and middleware instances are shared
// across all in-flight requests and must treat their own state as read-only or
// guard it with a lock.
package server
