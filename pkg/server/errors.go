package server

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error for status mapping. The dispatch core itself only
// ever originates KindNotFound; every other kind is produced by handlers or
// middleware and propagated unchanged.
type Kind int

const (
	// KindInternal is any failure without a more specific classification.
	KindInternal Kind = iota

	// KindNotFound means no route matched the request's method and path.
	KindNotFound

	// KindBadRequest means the request was malformed.
	KindBadRequest

	// KindUnauthorized means the request carried no verified identity.
	KindUnauthorized

	// KindForbidden means the identity lacked a required role.
	KindForbidden

	// KindTooManyRequests means a rate limit rejected the request.
	KindTooManyRequests
)

// String returns the kind's canonical name.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindTooManyRequests:
		return "too many requests"
	default:
		return "internal"
	}
}

// HTTPStatus returns the status code conventionally associated with the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified request-processing failure.
type Error struct {
	// Kind drives the HTTP status the error maps to.
	Kind Kind

	// Message describes the failure. It may be shown to clients, so it must
	// not leak internals.
	Message string

	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code for the error's kind.
func (e *Error) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest creates a KindBadRequest error.
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized creates a KindUnauthorized error.
func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// Forbidden creates a KindForbidden error.
func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// TooManyRequests creates a KindTooManyRequests error.
func TooManyRequests(format string, args ...any) *Error {
	return &Error{Kind: KindTooManyRequests, Message: fmt.Sprintf(format, args...)}
}

// Internal creates a KindInternal error wrapping cause.
func Internal(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Convert classifies an arbitrary error. An *Error anywhere in the chain is
// returned as-is; anything else becomes KindInternal. Nil stays nil.
func Convert(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}
