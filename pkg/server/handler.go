package server

import "context"

// Handler turns a Request into a Response or an error.
//
// Implementations must be safe for concurrent use: a single Handler instance
// is invoked from many request goroutines at once.
type Handler interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
