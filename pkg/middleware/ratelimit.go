package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

// RateLimitOption configures the rate limiter.
type RateLimitOption func(*rateLimiter)

// WithKeyFunc overrides how the client bucket key is derived from a request.
// The default is server.ClientIP over the request headers.
func WithKeyFunc(fn func(req *server.Request) string) RateLimitOption {
	return func(l *rateLimiter) {
		l.key = fn
	}
}

// WithClock overrides the limiter's time source. Tests use it to step through
// window boundaries deterministically.
func WithClock(now func() time.Time) RateLimitOption {
	return func(l *rateLimiter) {
		l.now = now
	}
}

type rateWindow struct {
	count int
	start time.Time
}

// rateLimiter holds the shared fixed-window state. One instance is shared by
// every chain instantiation; the counters are process-wide, never
// per-request.
type rateLimiter struct {
	max    int
	window time.Duration
	key    func(req *server.Request) string
	now    func() time.Time

	// sweepAt is the bucket count past which stale windows are evicted, so
	// the table stays bounded under client-IP churn.
	sweepAt int

	mu      sync.Mutex
	buckets map[string]*rateWindow
}

// RateLimit allows at most max requests per client key within each window.
//
// Each request finds its client's bucket, resets the counter when the window
// has elapsed, increments it, and short-circuits with 429 and a Retry-After
// hint when the incremented count exceeds max. The lock covers only the
// read-modify-write on the bucket table, so an abandoned request can never
// leave the table in a torn state.
func RateLimit(max int, window time.Duration, opts ...RateLimitOption) router.Middleware {
	l := &rateLimiter{
		max:     max,
		window:  window,
		key:     func(req *server.Request) string { return server.ClientIP(req.Header) },
		now:     time.Now,
		sweepAt: 4096,
		buckets: make(map[string]*rateWindow),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Handle implements router.Middleware.
func (l *rateLimiter) Handle(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
	key := l.key(req)
	now := l.now()

	l.mu.Lock()
	w, ok := l.buckets[key]
	if !ok {
		w = &rateWindow{start: now}
		l.buckets[key] = w
	}
	if now.Sub(w.start) > l.window {
		w.count = 0
		w.start = now
	}
	w.count++
	exceeded := w.count > l.max
	if len(l.buckets) > l.sweepAt {
		for k, b := range l.buckets {
			if b != w && now.Sub(b.start) > l.window {
				delete(l.buckets, k)
			}
		}
	}
	l.mu.Unlock()

	if exceeded {
		retryAfter := strconv.Itoa(int(l.window / time.Second))
		return server.NewResponse().
			Status(429).
			Header("Retry-After", retryAfter).
			JSON(map[string]string{"error": "rate limit exceeded"}), nil
	}

	return next.Handle(ctx, req)
}
