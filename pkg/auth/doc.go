// Package auth provides JWT token issuing/verification, bcrypt password
// helpers, and the middleware that attaches a verified identity to requests.
//
// The split of responsibilities is deliberate: auth.Middleware only
// establishes who the caller is; deciding whether that caller may proceed is
// middleware.AuthGuard's job, configured per route group:
//
//	tokens := auth.NewJWT(cfg.Auth.JWTSecret)
//	r.Use(auth.Middleware(tokens))
//	admin.Use(middleware.AuthGuard(middleware.RequireRole("admin")))
package auth
