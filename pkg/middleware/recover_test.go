package middleware

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/zaoinc/rustnext/pkg/server"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecoverCatchesPanic(t *testing.T) {
	panicking := server.HandlerFunc(func(ctx context.Context, req *server.Request) (*server.Response, error) {
		panic("nil map write")
	})

	resp, err := Recover(quietLogger()).Handle(context.Background(), testRequest("GET", "/"), panicking)
	if resp != nil {
		t.Errorf("resp = %v, want nil", resp)
	}
	appErr := server.Convert(err)
	if appErr == nil || appErr.Kind != server.KindInternal {
		t.Fatalf("err = %v, want internal", err)
	}
	if appErr.Message != "internal server error" {
		t.Errorf("Message = %q; panic values must not leak", appErr.Message)
	}
}

func TestRecoverPassThrough(t *testing.T) {
	resp, err := Recover(quietLogger()).Handle(context.Background(), testRequest("GET", "/"), okHandler("fine"))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if string(resp.Body) != "fine" {
		t.Errorf("body = %q", resp.Body)
	}
}

func TestLoggerPassThrough(t *testing.T) {
	resp, err := Logger(quietLogger()).Handle(context.Background(), testRequest("GET", "/"), okHandler("logged"))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if string(resp.Body) != "logged" {
		t.Errorf("body = %q", resp.Body)
	}
}

func TestLoggerErrorPassThrough(t *testing.T) {
	boom := server.Forbidden("no")
	failing := server.HandlerFunc(func(ctx context.Context, req *server.Request) (*server.Response, error) {
		return nil, boom
	})

	_, err := Logger(quietLogger()).Handle(context.Background(), testRequest("GET", "/"), failing)
	if err != boom {
		t.Errorf("err = %v, want the handler error unchanged", err)
	}
}
