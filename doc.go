// Package rustnext is a server-driven web framework built around three small
// pieces: a pattern router, composable middleware, and a dispatcher that owns
// error rendering.
//
// The recommended import for applications:
//
//	import "github.com/zaoinc/rustnext"
//
// Usage:
//
//	app := rustnext.New(rustnext.Config{})
//
//	app.Use(middleware.Logger(slog.Default()))
//	app.Get("/posts/:slug", server.HandlerFunc(showPost))
//
//	http.ListenAndServe(":3000", app)
//
// Route templates support named segments (":id" matches one path segment) and
// a trailing wildcard ("*" matches the rest of the path). Routes match in
// registration order; the first method-and-pattern match wins.
//
// Middleware wraps handlers onion-style: the first middleware registered with
// Use is the outermost layer, seeing the request first and the response last.
//
// Requests under the static prefix (default "/static") are served straight
// from the configured directory and never touch the router or middleware.
//
// Handlers return (*server.Response, error). Errors are converted to
// *server.Error and rendered by the configured ErrorHandler, so clients see a
// status page rather than internals.
package rustnext
