package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

// Logger records method, path, status and elapsed time for every request.
// It never alters the response and never short-circuits. A nil logger means
// slog.Default().
func Logger(logger *slog.Logger) router.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return router.MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		start := time.Now()
		resp, err := next.Handle(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("request failed",
				"method", req.Method,
				"path", req.Path,
				"error", err,
				"elapsed", elapsed,
			)
			return resp, err
		}

		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		logger.Info("request",
			"method", req.Method,
			"path", req.Path,
			"status", status,
			"elapsed", elapsed,
		)
		return resp, nil
	})
}
