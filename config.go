package rustnext

import (
	"log/slog"

	"github.com/zaoinc/rustnext/pkg/server"
)

// StaticConfig controls the static-file short circuit.
type StaticConfig struct {
	// Dir is the directory files are served from. Defaults to "public".
	Dir string

	// Prefix is the URL prefix that bypasses routing. Defaults to "/static".
	Prefix string

	// Handler overrides the default file handler. When set, Dir is ignored.
	Handler server.Handler
}

// Config configures an App.
type Config struct {
	// Static configures file serving. Leave zero for the defaults.
	Static StaticConfig

	// Logger receives dispatch errors. Defaults to slog.Default().
	Logger *slog.Logger

	// ErrorHandler turns dispatch errors into responses. Defaults to
	// DefaultErrorHandler.
	ErrorHandler ErrorHandler
}

// DefaultStaticConfig returns the static defaults used by New.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		Dir:    "public",
		Prefix: "/static",
	}
}
