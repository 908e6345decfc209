package rustnext

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/zaoinc/rustnext/pkg/router"
	"github.com/zaoinc/rustnext/pkg/server"
	"github.com/zaoinc/rustnext/pkg/static"
)

// =============================================================================
// App Type
// =============================================================================

// App is the rustnext application entry point. It wraps the router, the
// static-file short circuit, and error rendering into a single http.Handler.
//
// Create an App with rustnext.New():
//
//	app := rustnext.New(rustnext.Config{
//	    Static: rustnext.StaticConfig{Dir: "public", Prefix: "/static"},
//	})
//
//	app.Get("/users/:id", showUser)
//	http.ListenAndServe(":3000", app)
type App struct {
	router *router.Router

	staticPrefix  string
	staticHandler server.Handler

	errorHandler ErrorHandler
	logger       *slog.Logger
}

// ErrorHandler renders a dispatch error as a response. The error is always
// non-nil and already converted to *server.Error.
type ErrorHandler func(ctx context.Context, req *server.Request, err *server.Error) *server.Response

// New creates an application with the given configuration.
func New(cfg Config) *App {
	// Apply defaults
	if cfg.Static.Dir == "" {
		cfg.Static.Dir = DefaultStaticConfig().Dir
	}
	if cfg.Static.Prefix == "" {
		cfg.Static.Prefix = DefaultStaticConfig().Prefix
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = DefaultErrorHandler
	}

	staticHandler := cfg.Static.Handler
	if staticHandler == nil {
		staticHandler = static.NewFiles(cfg.Static.Dir, cfg.Static.Prefix)
	}

	return &App{
		router:        router.NewRouter(),
		staticPrefix:  cfg.Static.Prefix,
		staticHandler: staticHandler,
		errorHandler:  cfg.ErrorHandler,
		logger:        cfg.Logger,
	}
}

// =============================================================================
// Route Registration
// =============================================================================

// Get registers a GET route. See Router for the template syntax.
func (a *App) Get(template string, h server.Handler) *App {
	a.router.Get(template, h)
	return a
}

// Post registers a POST route.
func (a *App) Post(template string, h server.Handler) *App {
	a.router.Post(template, h)
	return a
}

// Put registers a PUT route.
func (a *App) Put(template string, h server.Handler) *App {
	a.router.Put(template, h)
	return a
}

// Delete registers a DELETE route.
func (a *App) Delete(template string, h server.Handler) *App {
	a.router.Delete(template, h)
	return a
}

// Handle registers a route for an arbitrary method.
func (a *App) Handle(method, template string, h server.Handler) *App {
	a.router.Handle(method, template, h)
	return a
}

// Use appends middleware to the dispatch chain. Middleware does not apply to
// static file requests.
func (a *App) Use(mw ...router.Middleware) *App {
	a.router.Use(mw...)
	return a
}

// Router exposes the underlying router for advanced registration.
func (a *App) Router() *router.Router {
	return a.router
}

// =============================================================================
// Dispatch
// =============================================================================

// Dispatch resolves a request to a response. Static-prefix requests bypass
// routing and middleware entirely; everything else goes through the router.
// Errors are converted and rendered by the configured error handler, so the
// returned response is never nil.
func (a *App) Dispatch(ctx context.Context, req *server.Request) *server.Response {
	var resp *server.Response
	var err error

	if a.isStatic(req.Path) {
		resp, err = a.staticHandler.Handle(ctx, req)
	} else {
		resp, err = a.router.Dispatch(ctx, req)
	}

	if err != nil {
		appErr := server.Convert(err)
		if appErr.Kind == server.KindInternal {
			a.logger.Error("request failed",
				"method", req.Method,
				"path", req.Path,
				"error", appErr)
		}
		resp = a.errorHandler(ctx, req, appErr)
	}
	if resp == nil {
		resp = DefaultErrorHandler(ctx, req, server.Convert(err))
	}
	return resp
}

func (a *App) isStatic(path string) bool {
	return a.staticPrefix != "" &&
		(path == a.staticPrefix || strings.HasPrefix(path, a.staticPrefix+"/"))
}

// ServeHTTP adapts the dispatcher to net/http.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Dispatch(r.Context(), server.NewRequest(r)).Write(w)
}

// =============================================================================
// Error Rendering
// =============================================================================

// DefaultErrorHandler renders a minimal HTML error page. Internal details
// never reach the client; only the status line is shown.
func DefaultErrorHandler(ctx context.Context, req *server.Request, err *server.Error) *server.Response {
	status := http.StatusInternalServerError
	message := "Internal Server Error"
	if err != nil {
		status = err.HTTPStatus()
		message = http.StatusText(status)
		if err.Kind != server.KindInternal && err.Message != "" {
			message = err.Message
		}
	}

	body := fmt.Sprintf(
		"<!DOCTYPE html><html><head><title>%d</title></head><body><h1>%d %s</h1></body></html>",
		status, status, html.EscapeString(message))

	return server.NewResponse().Status(status).HTML(body)
}
