// Package middleware provides the built-in middleware for RustNext
// applications.
//
// Middleware registered on a router wraps every matched handler in an onion:
// the first registration is outermost, running first on the way in and last
// on the way out:
//
//	r := router.NewRouter()
//	r.Use(middleware.Recover(nil))
//	r.Use(middleware.Logger(nil))
//	r.Use(middleware.RateLimit(100, time.Minute))
//
// # Built-ins
//
//   - Logger: structured request log (method, path, status, elapsed)
//   - CORS: preflight handling and allow-origin stamping
//   - RateLimit: fixed-window per-client limiting with Retry-After
//   - AuthGuard: 401/403 enforcement over the attached identity
//   - RequestID: per-request correlation IDs
//   - Recover: panic containment
//   - Prometheus: request counters and duration histograms
//   - OpenTelemetry: distributed tracing spans
//
// # Observability
//
// The Prometheus middleware registers its collectors on the registry passed
// via WithRegistry (default registry otherwise); expose them with
// promhttp.Handler on a side port. The OpenTelemetry middleware uses the
// global tracer provider and forwards the span context to inner handlers, so
// downstream clients called with the request context join the trace.
//
// # Shared state
//
// A middleware value is constructed once and shared by all in-flight
// requests. The stateful ones (RateLimit) guard their tables with a mutex
// scoped to the read-modify-write section only; nothing here assumes
// exclusive access across a request's lifetime.
package middleware
