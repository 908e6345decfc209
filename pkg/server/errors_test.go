package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInternal, http.StatusInternalServerError},
		{KindNotFound, http.StatusNotFound},
		{KindBadRequest, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindTooManyRequests, http.StatusTooManyRequests},
		{Kind(99), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.kind.HTTPStatus(); got != tt.want {
			t.Errorf("%v.HTTPStatus() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
		msg  string
	}{
		{"not found", NotFound("no route for %s", "/x"), KindNotFound, "no route for /x"},
		{"bad request", BadRequest("bad %s", "input"), KindBadRequest, "bad input"},
		{"unauthorized", Unauthorized("no token"), KindUnauthorized, "no token"},
		{"forbidden", Forbidden("admin only"), KindForbidden, "admin only"},
		{"too many requests", TooManyRequests("slow down"), KindTooManyRequests, "slow down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Message != tt.msg {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.msg)
			}
		})
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal(cause, "saving upload")

	if err.Kind != KindInternal {
		t.Errorf("Kind = %v", err.Kind)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestConvert(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if Convert(nil) != nil {
			t.Error("Convert(nil) != nil")
		}
	})

	t.Run("classified error returned as is", func(t *testing.T) {
		orig := NotFound("gone")
		if got := Convert(orig); got != orig {
			t.Errorf("Convert returned %v, want the original", got)
		}
	})

	t.Run("wrapped classified error is found", func(t *testing.T) {
		orig := Forbidden("nope")
		wrapped := fmt.Errorf("dispatch: %w", orig)
		if got := Convert(wrapped); got != orig {
			t.Errorf("Convert returned %v, want the wrapped original", got)
		}
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		cause := errors.New("boom")
		got := Convert(cause)
		if got.Kind != KindInternal {
			t.Errorf("Kind = %v, want internal", got.Kind)
		}
		if got.Message != "internal server error" {
			t.Errorf("Message = %q; raw errors must not leak", got.Message)
		}
		if !errors.Is(got, cause) {
			t.Error("cause not preserved")
		}
	})
}

func TestErrorString(t *testing.T) {
	err := Internal(errors.New("eof"), "reading body")
	want := "internal: reading body: eof"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
