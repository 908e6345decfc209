package session

import (
	"context"
	"net/http"
	"time"

	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

// CookieName is the cookie carrying the session ID.
const CookieName = "rustnext_session"

type sessionKey struct{}

// Middleware loads the request's session from store, creating a fresh one
// when the cookie is absent, unknown or expired, attaches it to the request,
// and after the inner chain returns persists it and re-issues the cookie.
func Middleware(store Store, ttl time.Duration) router.Middleware {
	return router.MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		sess, err := load(ctx, store, req)
		if err != nil {
			return nil, server.Internal(err, "loading session")
		}
		if sess == nil {
			sess = New(ttl)
		}
		req.SetValue(sessionKey{}, sess)

		resp, err := next.Handle(ctx, req)
		if err != nil {
			return resp, err
		}

		if err := store.Put(ctx, sess); err != nil {
			return nil, server.Internal(err, "saving session")
		}
		if resp != nil {
			cookie := &http.Cookie{
				Name:     CookieName,
				Value:    sess.ID,
				Path:     "/",
				Expires:  sess.ExpiresAt,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			}
			resp.Headers.Add("Set-Cookie", cookie.String())
		}
		return resp, nil
	})
}

// FromRequest returns the session attached by Middleware, or nil when the
// request did not pass through it.
func FromRequest(req *server.Request) *Session {
	if s, ok := req.Value(sessionKey{}).(*Session); ok {
		return s
	}
	return nil
}

func load(ctx context.Context, store Store, req *server.Request) (*Session, error) {
	// Parse the Cookie header through net/http to get quoting right.
	parser := http.Request{Header: req.Header}
	cookie, err := parser.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}
	return store.Get(ctx, cookie.Value)
}
