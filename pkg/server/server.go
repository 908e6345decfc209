package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
)

// ServerConfig configures the HTTP server wrapper.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string

	// Handler is the application entry point, typically *rustnext.App.
	Handler http.Handler

	// Logger is the structured logger. Nil means slog.Default().
	Logger *slog.Logger

	// Compression enables gzip/deflate response compression for clients that
	// negotiate it.
	Compression bool

	// ProxyHeaders promotes X-Forwarded-For / X-Forwarded-Proto onto the
	// request before handling. Enable only behind a trusted proxy.
	ProxyHeaders bool

	// ShutdownTimeout bounds graceful shutdown. Default: 10s.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds how long a client may take to send request
	// headers. Default: 5s.
	ReadHeaderTimeout time.Duration
}

// Server runs an application over net/http with graceful shutdown.
// Connection handling, TLS and HTTP protocol details belong to net/http; the
// server only decorates the handler and manages lifecycle.
type Server struct {
	cfg    ServerConfig
	logger *slog.Logger
	http   *http.Server
}

// NewServer creates a server from cfg, applying defaults.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":3000"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = 5 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := cfg.Handler
	if cfg.Compression {
		h = handlers.CompressHandler(h)
	}
	if cfg.ProxyHeaders {
		h = handlers.ProxyHeaders(h)
	}

	return &Server{
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           h,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully, draining
// in-flight requests for up to ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.logger.Info("server listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
