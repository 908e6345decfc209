package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
)

const defaultTracerName = "rustnext"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "rustnext").
	TracerName string

	// Filter determines which requests to trace. Return false to skip.
	// Nil traces everything.
	Filter func(req *server.Request) bool

	// AttributeExtractor adds custom attributes to each span.
	AttributeExtractor func(req *server.Request) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithRequestFilter sets a filter for which requests are traced.
func WithRequestFilter(filter func(req *server.Request) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom span attribute extractor.
func WithAttributeExtractor(extractor func(req *server.Request) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry traces every dispatched request as a server span. The span
// context is passed to the inner chain, so handlers making network or
// database calls with the request context inherit the trace.
//
// The tracer comes from the global provider; configure it in main() before
// the server starts.
func OpenTelemetry(opts ...OTelOption) router.Middleware {
	cfg := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	tracer := otel.Tracer(cfg.TracerName)

	return router.MiddlewareFunc(func(ctx context.Context, req *server.Request, next server.Handler) (*server.Response, error) {
		if cfg.Filter != nil && !cfg.Filter(req) {
			return next.Handle(ctx, req)
		}

		attrs := []attribute.KeyValue{
			attribute.String("http.method", req.Method),
			attribute.String("http.target", req.Path),
		}
		if cfg.AttributeExtractor != nil {
			attrs = append(attrs, cfg.AttributeExtractor(req)...)
		}

		spanCtx, span := tracer.Start(ctx,
			fmt.Sprintf("HTTP %s %s", req.Method, req.Path),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		resp, err := next.Handle(spanCtx, req)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
			if resp != nil {
				span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
			}
		}
		return resp, err
	})
}
