// Package router matches requests to handlers and composes middleware
// around them.
//
// # Templates
//
// Route templates mix literal text with captures:
//
//	r.Get("/users/:id", showUser)     // :id binds one path segment
//	r.Get("/files/*", serveFile)      // * binds the remainder of the path
//
// Literal characters, including regexp metacharacters, match themselves
// exactly. A named capture requires a non-empty segment: "/users/:id" does
// not match "/users/". Captures are available on the request via
// req.Param("id"); a wildcard remainder is available under router.WildcardKey.
//
// # Matching
//
// Routes are tried in registration order and the first method+pattern match
// wins. There is no specificity ranking: registering "/a/:x" before
// "/a/fixed" means "/a/fixed" resolves to the former with x = "fixed".
// Register narrow routes before broad ones.
//
// # Middleware
//
// Middleware registered with Use wraps every matched handler in an onion:
// for Use(m1), Use(m2) and handler h, the inbound order is m1, m2, h and the
// outbound order is h, m2, m1. A middleware that answers without calling next
// stops the inner chain, while everything outer to it still observes the
// response on the way out:
//
//	r.Use(middleware.Logger(nil))
//	r.Use(middleware.RateLimit(100, time.Minute))
//
// The router holds no per-request state: dispatch builds the chain by pointer
// composition and the same router serves any number of concurrent requests.
package router
