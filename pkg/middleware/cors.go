package middleware

import (
	"context"
	"net/http"

	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOrigin is the Access-Control-Allow-Origin value. Default: "*".
	AllowOrigin string

	// AllowMethods is the Access-Control-Allow-Methods value for preflights.
	AllowMethods string

	// AllowHeaders is the Access-Control-Allow-Headers value for preflights.
	AllowHeaders string
}

// CORSOption configures the CORS middleware.
type CORSOption func(*CORSConfig)

// WithAllowOrigin sets the allowed origin.
func WithAllowOrigin(origin string) CORSOption {
	return func(c *CORSConfig) {
		c.AllowOrigin = origin
	}
}

// WithAllowMethods sets the allowed methods advertised on preflights.
func WithAllowMethods(methods string) CORSOption {
	return func(c *CORSConfig) {
		c.AllowMethods = methods
	}
}

// WithAllowHeaders sets the allowed headers advertised on preflights.
func WithAllowHeaders(headers string) CORSOption {
	return func(c *CORSConfig) {
		c.AllowHeaders = headers
	}
}

func defaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigin:  "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}
}

// CORS answers preflight OPTIONS requests with an empty success response
// carrying the configured allow headers, short-circuiting the rest of the
// chain. Every other request is forwarded and the allow-origin header is
// stamped on its response on the way out.
func CORS(opts ...CORSOption) router.Middleware {
	cfg := defaultCORSConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return router.MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		if req.Method == http.MethodOptions {
			return server.NewResponse().
				Header("Access-Control-Allow-Origin", cfg.AllowOrigin).
				Header("Access-Control-Allow-Methods", cfg.AllowMethods).
				Header("Access-Control-Allow-Headers", cfg.AllowHeaders), nil
		}

		resp, err := next.Handle(ctx, req)
		if err != nil {
			return resp, err
		}
		if resp != nil {
			resp.Header("Access-Control-Allow-Origin", cfg.AllowOrigin)
		}
		return resp, nil
	})
}
