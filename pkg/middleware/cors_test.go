package middleware

import (
	"context"
	"net/http"
	"testing"
)

func TestCORSPreflight(t *testing.T) {
	var handlerCalls int
	mw := CORS()

	resp, err := mw.Handle(context.Background(), testRequest("OPTIONS", "/api/posts"), countingHandler(&handlerCalls))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if handlerCalls != 0 {
		t.Error("preflight must not reach the handler")
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if got := resp.Headers.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := resp.Headers.Get("Access-Control-Allow-Methods"); got != "GET, POST, PUT, DELETE, OPTIONS" {
		t.Errorf("Allow-Methods = %q", got)
	}
	if got := resp.Headers.Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization" {
		t.Errorf("Allow-Headers = %q", got)
	}
}

func TestCORSStampsOrigin(t *testing.T) {
	mw := CORS(WithAllowOrigin("https://example.com"))

	resp, err := mw.Handle(context.Background(), testRequest("GET", "/api/posts"), okHandler("data"))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if string(resp.Body) != "data" {
		t.Errorf("body = %q", resp.Body)
	}
	if got := resp.Headers.Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}
	// Non-preflight responses carry only the origin header.
	if resp.Headers.Get("Access-Control-Allow-Methods") != "" {
		t.Error("Allow-Methods should only appear on preflights")
	}
}
