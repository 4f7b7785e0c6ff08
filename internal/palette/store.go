package palette

import (
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/singleflight"
)

// ThemeSource supplies project theme variables. Implementations own file
// discovery and error reporting; a failed load returns what it could read.
type ThemeSource interface {
	LoadThemeVariables() *Variables
}

// ThemeSourceFunc adapts a function to ThemeSource.
type ThemeSourceFunc func() *Variables

// LoadThemeVariables calls f.
func (f ThemeSourceFunc) LoadThemeVariables() *Variables {
	return f()
}

// Snapshot is a palette and the theme variables it was built from.
// Snapshots are immutable once published.
type Snapshot struct {
	Palette    *Palette
	Variables  *Variables
	Generation uint64
}

// Store builds the merged palette lazily and caches it until Invalidate.
// Concurrent callers see either the previous or a fully built snapshot;
// concurrent rebuilds share one in-flight build.
type Store struct {
	source ThemeSource
	logger hclog.Logger

	group   singleflight.Group
	current atomic.Pointer[Snapshot]

	// mu orders publishing a build against Invalidate.
	mu         sync.Mutex
	generation uint64
}

// NewStore creates a store over a theme source. A nil source yields the
// built-in table only.
func NewStore(source ThemeSource, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{
		source: source,
		logger: logger.Named("palette"),
	}
}

// Snapshot returns the current palette snapshot, building it if needed.
func (s *Store) Snapshot() *Snapshot {
	if snap := s.current.Load(); snap != nil {
		return snap
	}

	v, _, _ := s.group.Do("palette", func() (any, error) {
		if snap := s.current.Load(); snap != nil {
			return snap, nil
		}
		return s.rebuild(), nil
	})
	return v.(*Snapshot)
}

// Palette returns the current merged palette.
func (s *Store) Palette() *Palette {
	return s.Snapshot().Palette
}

// Variables returns the theme variables the current palette was built from.
func (s *Store) Variables() *Variables {
	return s.Snapshot().Variables
}

// Invalidate discards the cached palette. The next access rebuilds it.
// A build already in flight is not cached once it completes.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.current.Store(nil)
	s.logger.Debug("palette invalidated", "generation", s.generation)
}

func (s *Store) rebuild() *Snapshot {
	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	vars := NewVariables()
	if s.source != nil {
		if loaded := s.source.LoadThemeVariables(); loaded != nil {
			vars = loaded
		}
	}

	snap := &Snapshot{
		Palette:    Merge(vars),
		Variables:  vars,
		Generation: gen,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == gen {
		s.current.Store(snap)
	}

	s.logger.Debug("palette built",
		"generation", gen,
		"entries", snap.Palette.Len(),
		"theme_variables", vars.Len())

	return snap
}
