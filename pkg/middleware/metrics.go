package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "rustnext").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to register with.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "rustnext",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

type metricsSet struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
}

// Prometheus collects request metrics:
//
//   - rustnext_requests_total: counter by method, path and status
//   - rustnext_request_duration_seconds: histogram by method and path
//   - rustnext_request_errors_total: counter by path and error kind
//
// Each call builds and registers its own metric set, so two applications in
// one process can observe independently by passing separate registries:
//
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	    middleware.WithRegistry(reg),
//	))
func Prometheus(opts ...MetricsOption) router.Middleware {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	m := &metricsSet{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests dispatched",
			ConstLabels: cfg.ConstLabels,
		}, []string{"method", "path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "Request processing duration in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"method", "path"}),

		requestErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "request_errors_total",
			Help:        "Total number of request processing errors",
			ConstLabels: cfg.ConstLabels,
		}, []string{"path", "kind"}),
	}

	return router.MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		start := time.Now()
		resp, err := next.Handle(ctx, req)
		m.requestDuration.WithLabelValues(req.Method, req.Path).Observe(time.Since(start).Seconds())

		status := 0
		switch {
		case err != nil:
			appErr := server.Convert(err)
			status = appErr.HTTPStatus()
			m.requestErrors.WithLabelValues(req.Path, appErr.Kind.String()).Inc()
		case resp != nil:
			status = resp.StatusCode
		}
		m.requestsTotal.WithLabelValues(req.Method, req.Path, strconv.Itoa(status)).Inc()

		return resp, err
	})
}
