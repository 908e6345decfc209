package middleware

import (
	"context"
	"net/http"

	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

// AuthGuardConfig configures the authentication guard.
type AuthGuardConfig struct {
	// RequiredRoles, when non-empty, admits only identities carrying at least
	// one of these roles.
	RequiredRoles []string

	// RedirectURL, when set, turns the anonymous-request rejection into a
	// redirect instead of a 401. Browser-facing routes use this to send users
	// to a login page.
	RedirectURL string
}

// AuthGuardOption configures the authentication guard.
type AuthGuardOption func(*AuthGuardConfig)

// RequireRole adds a role to the required set.
func RequireRole(role string) AuthGuardOption {
	return func(c *AuthGuardConfig) {
		c.RequiredRoles = append(c.RequiredRoles, role)
	}
}

// RedirectTo sends anonymous requests to url instead of answering 401.
func RedirectTo(url string) AuthGuardOption {
	return func(c *AuthGuardConfig) {
		c.RedirectURL = url
	}
}

// AuthGuard rejects requests without a verified identity. Attaching the
// identity is the job of an upstream authentication middleware (see
// pkg/auth); the guard only inspects req.User.
//
// An anonymous request short-circuits with 401 (or the configured redirect);
// an identity missing every required role short-circuits with 403. Everything
// else is forwarded unchanged.
func AuthGuard(opts ...AuthGuardOption) router.Middleware {
	var cfg AuthGuardConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return router.MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		if req.User == nil {
			if cfg.RedirectURL != "" {
				return server.NewResponse().Redirect(cfg.RedirectURL), nil
			}
			return server.NewResponse().
				Status(http.StatusUnauthorized).
				JSON(map[string]string{"error": "authentication required"}), nil
		}

		if len(cfg.RequiredRoles) > 0 {
			allowed := false
			for _, role := range cfg.RequiredRoles {
				if req.User.HasRole(role) {
					allowed = true
					break
				}
			}
			if !allowed {
				return server.NewResponse().
					Status(http.StatusForbidden).
					JSON(map[string]string{"error": "insufficient permissions"}), nil
			}
		}

		return next.Handle(ctx, req)
	})
}
