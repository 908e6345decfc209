package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

// Recover converts a handler panic into an internal error instead of letting
// it tear down the serving goroutine. The stack trace goes to the log, never
// to the client. Place it outermost so it also covers the other middleware.
func Recover(logger *slog.Logger) router.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return router.MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (resp *server.Response, err error) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("handler panic",
					"method", req.Method,
					"path", req.Path,
					"panic", v,
					"stack", string(debug.Stack()),
				)
				resp = nil
				err = server.Internal(fmt.Errorf("panic: %v", v), "internal server error")
			}
		}()
		return next.Handle(ctx, req)
	})
}
