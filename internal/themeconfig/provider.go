// Package themeconfig reads a project's Tailwind configuration tree and
// answers theme() path lookups against it.
package themeconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dop251/goja"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tailtint/internal/security"
)

const (
	// MaxConfigSize caps configuration files read by FileProvider.
	MaxConfigSize = 1 << 20

	// DefaultEvalTimeout bounds the evaluation of JavaScript configs.
	DefaultEvalTimeout = 2 * time.Second
)

// DefaultPaths are the configuration files looked for under a project root.
var DefaultPaths = []string{
	"tailwind.config.js",
	"tailwind.config.cjs",
	"tailwind.config.mjs",
	"tailwind.config.json",
}

var (
	exportDefaultRegex = regexp.MustCompile(`(?m)^\s*export\s+default\s+`)
	importDefaultRegex = regexp.MustCompile(`(?m)^\s*import\s+([A-Za-z_$][\w$]*)\s+from\s+['"]([^'"]+)['"]\s*;?`)
	importNamedRegex   = regexp.MustCompile(`(?m)^\s*import\s*\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]\s*;?`)
	importBareRegex    = regexp.MustCompile(`(?m)^\s*import\s+['"][^'"]+['"]\s*;?`)
	importAliasRegex   = regexp.MustCompile(`\s+as\s+`)
)

// Provider reads a configuration file into a generic value tree of maps,
// slices, strings, numbers and booleans.
type Provider interface {
	ReadJSON(path string) (any, bool)
}

// FileProvider reads JSON files directly and evaluates JavaScript configs
// (.js, .cjs, .mjs) in an embedded interpreter. require() calls return
// empty objects, so plugins and presets contribute nothing.
type FileProvider struct {
	Logger hclog.Logger
	// EvalTimeout bounds script evaluation. Zero uses DefaultEvalTimeout.
	EvalTimeout time.Duration
}

// ReadJSON implements Provider.
func (p *FileProvider) ReadJSON(path string) (any, bool) {
	logger := p.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	data, err := readFile(path)
	if err != nil {
		logger.Debug("failed to read config", "path", path, "error", err)
		return nil, false
	}

	var tree any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".cjs", ".mjs":
		tree, err = p.evalModule(string(data))
	default:
		err = json.Unmarshal(data, &tree)
	}
	if err != nil {
		logger.Debug("failed to load config", "path", path, "error", err)
		return nil, false
	}
	return tree, true
}

// evalModule runs a CommonJS or ES module config and returns its export.
func (p *FileProvider) evalModule(src string) (any, error) {
	vm := goja.New()

	timeout := p.EvalTimeout
	if timeout == 0 {
		timeout = DefaultEvalTimeout
	}
	timer := time.AfterFunc(timeout, func() {
		vm.Interrupt("config evaluation timed out")
	})
	defer timer.Stop()

	module := vm.NewObject()
	exports := vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}
	if err := vm.Set("module", module); err != nil {
		return nil, err
	}
	if err := vm.Set("exports", exports); err != nil {
		return nil, err
	}
	if err := vm.Set("require", func(goja.FunctionCall) goja.Value {
		return vm.NewObject()
	}); err != nil {
		return nil, err
	}

	if _, err := vm.RunString(rewriteModule(src)); err != nil {
		return nil, fmt.Errorf("failed to evaluate config: %w", err)
	}

	result := module.Get("exports")
	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return nil, fmt.Errorf("config has no exports")
	}
	if obj := result.ToObject(vm); obj != nil {
		if def := obj.Get("default"); def != nil && !goja.IsUndefined(def) && !goja.IsNull(def) {
			result = def
		}
	}
	return result.Export(), nil
}

// rewriteModule turns ES module syntax into CommonJS the interpreter can run.
func rewriteModule(src string) string {
	src = importDefaultRegex.ReplaceAllString(src, `var $1 = require("$2");`)
	src = importNamedRegex.ReplaceAllStringFunc(src, func(stmt string) string {
		m := importNamedRegex.FindStringSubmatch(stmt)
		names := importAliasRegex.ReplaceAllString(strings.TrimSpace(m[1]), ": ")
		return fmt.Sprintf("var {%s} = require(%q);", names, m[2])
	})
	src = importBareRegex.ReplaceAllString(src, "")
	return exportDefaultRegex.ReplaceAllString(src, "module.exports = ")
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(security.NewLimitedReader(f, MaxConfigSize))
}

// Discover returns the first configuration file that exists under root, or
// "" when there is none.
func Discover(root string) string {
	for _, rel := range DefaultPaths {
		path := filepath.Join(root, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
