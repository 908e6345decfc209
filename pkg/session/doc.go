// Package session provides cookie-bound sessions backed by a pluggable
// Store.
//
// The middleware owns the cookie lifecycle; handlers only see the loaded
// session:
//
//	store := session.NewMemoryStore()
//	r.Use(session.Middleware(store, 30*time.Minute))
//
//	func handler(ctx context.Context, req *server.Request) (*server.Response, error) {
//	    sess := session.FromRequest(req)
//	    sess.Set("views", views+1)
//	    ...
//	}
//
// MemoryStore copies sessions at its boundary, so concurrent requests for the
// same browser each mutate a private view and the last save wins; a store
// never hands two goroutines the same map.
package session
