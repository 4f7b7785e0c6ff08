package themecss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tailtint/internal/palette"
	"github.com/jmylchreest/tailtint/internal/security"
	httputil "github.com/jmylchreest/tailtint/internal/util/http"
)

// MaxFileSize is the most a single stylesheet may contribute. Longer files
// are parsed up to the limit.
const MaxFileSize = 4 << 20

// DefaultPaths are the stylesheet locations checked under the project root,
// relative to it, after any custom path.
var DefaultPaths = []string{
	"src/tailwind.css",
	"tailwind.css",
	"src/app.css",
	"src/index.css",
	"src/globals.css",
	"src/styles/globals.css",
	"app/globals.css",
	"styles/globals.css",
	"public/styles.css",
}

// FileSource loads theme variables from the project's stylesheets.
type FileSource struct {
	// Root is the project directory.
	Root string
	// CustomPath is an extra stylesheet checked first. Relative paths are
	// taken from Root; the path may not leave Root.
	CustomPath string
	Logger     hclog.Logger
}

// Files returns the existing stylesheets in load order.
func (s *FileSource) Files() []string {
	logger := s.logger()
	var candidates []string

	if s.CustomPath != "" {
		path, err := security.ResolveWithin(s.CustomPath, s.Root)
		if err != nil {
			logger.Warn("ignoring custom stylesheet path", "path", s.CustomPath, "error", err)
		} else {
			candidates = append(candidates, path)
		}
	}
	for _, rel := range DefaultPaths {
		candidates = append(candidates, filepath.Join(s.Root, rel))
	}

	var files []string
	for _, path := range candidates {
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || info.IsDir() {
			continue
		}
		if !slices.Contains(files, abs) {
			files = append(files, abs)
		}
	}
	return files
}

// LoadThemeVariables parses every stylesheet from Files. Later files
// override earlier ones on name conflicts. Unreadable files are skipped.
func (s *FileSource) LoadThemeVariables() *palette.Variables {
	logger := s.logger()
	vars := palette.NewVariables()

	for _, path := range s.Files() {
		content, err := readLimited(path)
		if err != nil {
			if !errors.Is(err, security.ErrSizeLimit) {
				logger.Warn("failed to read stylesheet", "path", path, "error", err)
				continue
			}
			logger.Warn("stylesheet truncated", "path", path, "limit", MaxFileSize)
		}
		parsed := Parse(content)
		logger.Debug("parsed stylesheet", "path", path, "colours", parsed.Len())
		vars.Merge(parsed)
	}

	return vars
}

func (s *FileSource) logger() hclog.Logger {
	if s.Logger == nil {
		return hclog.NewNullLogger()
	}
	return s.Logger
}

// readLimited reads at most MaxFileSize bytes. On ErrSizeLimit the content
// read so far is returned with the error.
func readLimited(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(security.NewLimitedReader(f, MaxFileSize))
	if err != nil {
		return string(data), fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// RemoteSource loads theme variables from a stylesheet served over HTTP(S).
type RemoteSource struct {
	URL     string
	Timeout time.Duration
	Logger  hclog.Logger
}

// Validate checks the URL is usable.
func (s *RemoteSource) Validate() error {
	return security.ValidateHTTPURL(s.URL)
}

// Load fetches and parses the stylesheet.
func (s *RemoteSource) Load(ctx context.Context) (*palette.Variables, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	content, err := httputil.Fetch(ctx, s.URL, httputil.FetchOptions{
		Timeout:  s.Timeout,
		MaxBytes: MaxFileSize,
	})
	if err != nil && !errors.Is(err, security.ErrSizeLimit) {
		return nil, fmt.Errorf("failed to fetch stylesheet: %w", err)
	}
	return Parse(string(content)), nil
}

// LoadThemeVariables implements palette.ThemeSource. Failures are logged
// and yield an empty table.
func (s *RemoteSource) LoadThemeVariables() *palette.Variables {
	logger := s.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	vars, err := s.Load(context.Background())
	if err != nil {
		logger.Warn("failed to load remote stylesheet", "url", s.URL, "error", err)
		return palette.NewVariables()
	}
	logger.Debug("parsed remote stylesheet", "url", s.URL, "colours", vars.Len())
	return vars
}

// MultiSource merges several sources in order; later sources win.
type MultiSource []palette.ThemeSource

// LoadThemeVariables implements palette.ThemeSource.
func (m MultiSource) LoadThemeVariables() *palette.Variables {
	vars := palette.NewVariables()
	for _, src := range m {
		if src == nil {
			continue
		}
		vars.Merge(src.LoadThemeVariables())
	}
	return vars
}
