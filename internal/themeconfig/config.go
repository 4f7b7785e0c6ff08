package themeconfig

import (
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Config resolves theme() paths against a configuration file. The tree is
// loaded on first use and kept until Invalidate.
type Config struct {
	provider Provider
	path     string
	logger   hclog.Logger

	mu     sync.Mutex
	loaded bool
	tree   any
}

// New creates a Config reading path through provider. An empty path makes
// every lookup miss.
func New(provider Provider, path string, logger hclog.Logger) *Config {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if provider == nil {
		provider = &FileProvider{Logger: logger}
	}
	return &Config{
		provider: provider,
		path:     path,
		logger:   logger.Named("themeconfig"),
	}
}

// Path returns the configuration file path.
func (c *Config) Path() string {
	return c.path
}

// ResolvePath looks up a dotted path such as "colors.red.500" under theme,
// then under theme.extend. Quotes are ignored and "a[b]" is read as "a.b".
// Only string values count; an object with a DEFAULT string yields that.
func (c *Config) ResolvePath(dotted string) (string, bool) {
	keys := splitPath(dotted)
	if len(keys) == 0 {
		return "", false
	}

	theme, ok := child(c.load(), "theme")
	if !ok {
		return "", false
	}
	if v, ok := walk(theme, keys); ok {
		return v, true
	}
	if extend, ok := child(theme, "extend"); ok {
		return walk(extend, keys)
	}
	return "", false
}

// Invalidate drops the cached tree so the next lookup reloads the file.
func (c *Config) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.tree = nil
}

func (c *Config) load() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.tree
	}
	c.loaded = true
	if c.path == "" {
		return nil
	}
	tree, ok := c.provider.ReadJSON(c.path)
	if !ok {
		c.logger.Debug("no usable config", "path", c.path)
		return nil
	}
	c.tree = tree
	return tree
}

func splitPath(dotted string) []string {
	dotted = strings.NewReplacer(`"`, "", "'", "", "[", ".", "]", "").Replace(strings.TrimSpace(dotted))
	var keys []string
	for _, k := range strings.Split(dotted, ".") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func child(node any, key string) (any, bool) {
	m, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

func walk(node any, keys []string) (string, bool) {
	for _, key := range keys {
		next, ok := child(node, key)
		if !ok {
			return "", false
		}
		node = next
	}
	switch v := node.(type) {
	case string:
		return v, true
	case map[string]any:
		if s, ok := v["DEFAULT"].(string); ok {
			return s, true
		}
	}
	return "", false
}
