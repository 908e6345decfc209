package server

import (
	"net/http"
	"strings"
)

// UnknownClient is the rate-limit key used when no client address can be
// derived from the request headers.
const UnknownClient = "unknown"

// ClientIP derives the client address from proxy headers: the first entry of
// X-Forwarded-For, then X-Real-Ip, then UnknownClient. Middleware keyed by
// client (rate limiting, audit logging) uses this as its bucket key.
//
// Deploy behind a proxy that overwrites these headers; they are
// client-controlled otherwise.
func ClientIP(h http.Header) string {
	if fwd := h.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		if fwd = strings.TrimSpace(fwd); fwd != "" {
			return fwd
		}
	}
	if ip := strings.TrimSpace(h.Get("X-Real-Ip")); ip != "" {
		return ip
	}
	return UnknownClient
}
