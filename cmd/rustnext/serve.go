package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/zaoinc/rustnext"
	"github.com/zaoinc/rustnext/internal/config"
	"github.com/zaoinc/rustnext/internal/dev"
	"github.com/zaoinc/rustnext/pkg/auth"
	"github.com/zaoinc/rustnext/pkg/middleware"
	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
	"github.com/zaoinc/rustnext/pkg/session"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server using rustnext.json from the working directory.

Flags override the configuration file. Optional subsystems (metrics,
tracing, hot reload) are toggled through the "features" section.

Examples:
  rustnext serve
  rustnext serve --port=8080
  rustnext serve --config=deploy/rustnext.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, host, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file (default "+config.ConfigFileName+")")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from rustnext.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from rustnext.json)")

	return cmd
}

func runServe(configPath, host string, port int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := rustnext.New(rustnext.Config{
		Static: rustnext.StaticConfig{
			Dir:    cfg.Static.Dir,
			Prefix: cfg.Static.Prefix,
		},
		Logger: logger,
	})

	mw := []router.Middleware{
		middleware.Recover(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	}
	if cfg.Features.Metrics {
		mw = append(mw, middleware.Prometheus())
	}
	if cfg.Features.Tracing {
		mw = append(mw, middleware.OpenTelemetry())
	}
	if cfg.Auth.JWTSecret != "" {
		mw = append(mw, auth.Middleware(auth.NewJWT(cfg.Auth.JWTSecret)))
	}
	ttl := time.Duration(cfg.Auth.SessionTTLSeconds) * time.Second
	mw = append(mw, session.Middleware(session.NewMemoryStore(), ttl))
	app.Use(mw...)

	handler := buildHandler(app, cfg, logger)

	srv := server.NewServer(server.ServerConfig{
		Addr:         cfg.Addr(),
		Handler:      handler,
		Logger:       logger,
		Compression:  cfg.Server.Compression,
		ProxyHeaders: cfg.Server.ProxyHeaders,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner()
	success("Listening on http://%s", cfg.Addr())
	if cfg.Features.HotReload {
		info("Hot reload enabled")
	}

	return srv.Run(ctx)
}

// buildHandler mounts the app plus any feature endpoints on a mux.
func buildHandler(app *rustnext.App, cfg config.Config, logger *slog.Logger) http.Handler {
	if !cfg.Features.Metrics && !cfg.Features.HotReload {
		return app
	}

	mux := http.NewServeMux()
	if cfg.Features.Metrics {
		mux.Handle("/metrics", promhttp.Handler())
	}
	if cfg.Features.HotReload {
		reload := dev.NewReloadServer()
		mux.Handle("/_rustnext/reload", reload)

		watcher := dev.NewWatcher(dev.WatchConfig{Paths: []string{cfg.Static.Dir}})
		watcher.OnChange(func(c dev.Change) {
			info("changed: %s", c.Path)
			if c.CSS {
				reload.NotifyCSS(c.Path)
			} else {
				reload.NotifyReload(c.Path)
			}
		})
		go func() {
			if err := watcher.Start(context.Background()); err != nil && err != context.Canceled {
				logger.Error("watcher stopped", "error", err)
			}
		}()
	}
	mux.Handle("/", app)
	return mux
}
