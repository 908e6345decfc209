// Package static serves files from a directory under a URL prefix. The
// dispatcher consumes it as an opaque server.Handler; nothing here knows
// about routing.
package static

import (
	"context"
	"fmt"
	"hash/fnv"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/zaoinc/rustnext/pkg/server"
)

// Files serves the contents of a directory at a URL prefix.
//
// Files up to the cache limit are kept in memory after first read, keyed by
// relative path, with an FNV content hash as ETag so repeat visitors get 304s.
// The cache is shared across requests behind an RWMutex.
type Files struct {
	dir        string
	prefix     string
	maxAge     time.Duration
	cacheLimit int64

	mu    sync.RWMutex
	cache map[string]*cachedFile
}

type cachedFile struct {
	content     []byte
	contentType string
	etag        string
}

// Option configures a Files handler.
type Option func(*Files)

// WithMaxAge sets the Cache-Control max-age. Default: 1h.
func WithMaxAge(d time.Duration) Option {
	return func(f *Files) {
		f.maxAge = d
	}
}

// WithCacheLimit sets the largest file size kept in the in-memory cache.
// Default: 1 MiB. Zero disables caching.
func WithCacheLimit(bytes int64) Option {
	return func(f *Files) {
		f.cacheLimit = bytes
	}
}

// NewFiles creates a handler serving dir at prefix.
func NewFiles(dir, prefix string, opts ...Option) *Files {
	f := &Files{
		dir:        dir,
		prefix:     prefix,
		maxAge:     time.Hour,
		cacheLimit: 1 << 20,
		cache:      make(map[string]*cachedFile),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Handle implements server.Handler.
func (f *Files) Handle(_ context.Context, req *server.Request) (*server.Response, error) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return server.NewResponse().
			Status(http.StatusMethodNotAllowed).
			Text("Method Not Allowed"), nil
	}

	rel, ok := f.relPath(req.Path)
	if !ok {
		return notFound(), nil
	}

	file, err := f.load(rel)
	if err != nil {
		return notFound(), nil
	}

	if match := req.Header.Get("If-None-Match"); match != "" && match == file.etag {
		return server.NewResponse().
			Status(http.StatusNotModified).
			Header("ETag", file.etag), nil
	}

	resp := server.NewResponse().
		Header("Content-Type", file.contentType).
		Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(f.maxAge/time.Second))).
		Header("ETag", file.etag)
	if req.Method == http.MethodGet {
		resp.Bytes(file.content)
	}
	return resp, nil
}

// relPath strips the prefix and sanitizes the remainder so serving can never
// escape the configured directory.
func (f *Files) relPath(urlPath string) (string, bool) {
	rel, ok := strings.CutPrefix(urlPath, f.prefix)
	if !ok {
		return "", false
	}
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return "", false
	}

	// Reject NUL (reachable via %00) and platform separators.
	if strings.IndexByte(rel, 0) != -1 || strings.Contains(rel, "\\") {
		return "", false
	}

	// An absolute remainder means a "//etc/passwd" style attempt.
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning so traversal attempts are refused
	// rather than silently rewritten.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}
	return clean, true
}

func (f *Files) load(rel string) (*cachedFile, error) {
	f.mu.RLock()
	cached, ok := f.cache[rel]
	f.mu.RUnlock()
	if ok {
		return cached, nil
	}

	full := filepath.Join(f.dir, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("static: not a servable file: %s", rel)
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(rel))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := fnv.New64a()
	h.Write(content)
	file := &cachedFile{
		content:     content,
		contentType: contentType,
		etag:        fmt.Sprintf("%q", fmt.Sprintf("%x", h.Sum64())),
	}

	if f.cacheLimit > 0 && int64(len(content)) <= f.cacheLimit {
		f.mu.Lock()
		f.cache[rel] = file
		f.mu.Unlock()
	}
	return file, nil
}

func notFound() *server.Response {
	return server.NewResponse().
		Status(http.StatusNotFound).
		Text("File not found")
}
