package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

// requestIDHeader is the header the request ID is read from and echoed on.
const requestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// RequestID assigns every request an identifier: the inbound X-Request-Id
// when a proxy already set one, otherwise a fresh UUID. The ID is attached to
// the request values and echoed on the response header so log lines and
// client reports can be correlated.
func RequestID() router.Middleware {
	return router.MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		id := req.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		req.SetValue(requestIDKey{}, id)

		resp, err := next.Handle(ctx, req)
		if resp != nil {
			resp.Header(requestIDHeader, id)
		}
		return resp, err
	})
}

// RequestIDFromRequest returns the identifier assigned by RequestID, or "".
func RequestIDFromRequest(req *server.Request) string {
	if id, ok := req.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
