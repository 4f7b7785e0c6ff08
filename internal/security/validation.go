// Package security provides input validation for paths and URLs that come
// from project configuration.
package security

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrSizeLimit is returned by LimitedReader once its budget is spent.
var ErrSizeLimit = errors.New("read size limit exceeded")

// ValidateHTTPURL validates a URL for fetching a remote stylesheet.
// Only http:// and https:// URLs with a hostname are allowed.
func ValidateHTTPURL(urlStr string) error {
	if urlStr == "" {
		return fmt.Errorf("empty URL")
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https:// (got %q)", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a hostname")
	}

	return nil
}

// ResolveWithin resolves path against baseDir and ensures the result stays
// inside baseDir. Relative paths are joined to baseDir; absolute paths are
// accepted only when they already lie within it. The cleaned absolute path
// is returned.
func ResolveWithin(path, baseDir string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	absBaseDir, err := filepath.Abs(filepath.Clean(baseDir))
	if err != nil {
		return "", fmt.Errorf("invalid base directory: %w", err)
	}

	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(absBaseDir, full)
	}
	full = filepath.Clean(full)

	if !strings.HasPrefix(full, absBaseDir+string(filepath.Separator)) && full != absBaseDir {
		return "", fmt.Errorf("path %q escapes %q (attempted path traversal)", path, baseDir)
	}

	return full, nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Reading past the limit returns ErrSizeLimit.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
