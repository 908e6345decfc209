package auth

import (
	"context"
	"strings"

	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

// MiddlewareOption configures the authentication middleware.
type MiddlewareOption func(*authMiddleware)

// SkipPath exempts a path from token verification. Login and registration
// endpoints are skipped by default.
func SkipPath(path string) MiddlewareOption {
	return func(m *authMiddleware) {
		m.skipPaths = append(m.skipPaths, path)
	}
}

type authMiddleware struct {
	jwt       *JWT
	skipPaths []string
}

// Middleware verifies the Bearer token on each request and attaches the
// resulting identity to req.User. Requests without an Authorization header
// pass through anonymous; rejecting those is middleware.AuthGuard's job, so
// public and protected routes can share one chain. A present but invalid
// token is an unauthorized error.
func Middleware(j *JWT, opts ...MiddlewareOption) router.Middleware {
	m := &authMiddleware{
		jwt:       j,
		skipPaths: []string{"/login", "/register"},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle implements router.Middleware.
func (m *authMiddleware) Handle(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
	for _, p := range m.skipPaths {
		if req.Path == p {
			return next.Handle(ctx, req)
		}
	}

	header := req.Header.Get("Authorization")
	if header == "" {
		return next.Handle(ctx, req)
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil, server.Unauthorized("malformed authorization header")
	}

	claims, err := m.jwt.VerifyToken(token)
	if err != nil {
		return nil, server.Unauthorized("invalid token")
	}

	req.User = &server.Identity{
		Subject: claims.Subject,
		Roles:   claims.Roles,
	}
	return next.Handle(ctx, req)
}
