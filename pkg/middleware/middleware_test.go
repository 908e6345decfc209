package middleware

import (
	"context"
	"net/http/httptest"

	"github.com/zaoinc/rustnext/pkg/server"
)

func testRequest(method, path string) *server.Request {
	return server.NewRequest(httptest.NewRequest(method, path, nil))
}

func okHandler(body string) server.Handler {
	return server.HandlerFunc(func(ctx context.Context, req *server.Request) (*server.Response, error) {
		return server.NewResponse().Text(body), nil
	})
}

func countingHandler(n *int) server.Handler {
	return server.HandlerFunc(func(ctx context.Context, req *server.Request) (*server.Response, error) {
		*n++
		return server.NewResponse().Text("ok"), nil
	})
}
