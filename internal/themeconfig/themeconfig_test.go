package themeconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const jsonConfig = `{
  "theme": {
    "colors": {"brand": "#123456", "primary": {"DEFAULT": "#0000ff", "500": "#0000aa"}},
    "spacing": {"4": 16},
    "extend": {"colors": {"accent": "#ff00ff", "brand": "#999999"}}
  }
}`

func TestFileProviderFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "tailwind.config.json", jsonConfig},
		{"commonjs", "tailwind.config.cjs", "module.exports = " + jsonConfig + ";"},
		{"esm", "tailwind.config.mjs", "import colors from 'tailwindcss/colors';\nimport 'side-effect';\n" +
			"import { a, b as c } from './tokens.js';\nexport default " + jsonConfig + ";"},
		{"exports default", "tailwind.config.js", "exports.default = " + jsonConfig + ";"},
		{"require", "tailwind.config.js", "const forms = require('@tailwindcss/forms');\n" +
			"/** @type {import('tailwindcss').Config} */\nmodule.exports = Object.assign(" + jsonConfig + ", {plugins: [forms]});"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			cfg := New(&FileProvider{}, path, nil)

			if got, ok := cfg.ResolvePath("colors.brand"); !ok || got != "#123456" {
				t.Errorf("ResolvePath(colors.brand) = %q, %v", got, ok)
			}
			if got, ok := cfg.ResolvePath("colors.primary.500"); !ok || got != "#0000aa" {
				t.Errorf("ResolvePath(colors.primary.500) = %q, %v", got, ok)
			}
		})
	}
}

func TestFileProviderFailures(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad json", "tailwind.config.json", "{"},
		{"syntax error", "tailwind.config.js", "module.exports = {"},
		{"throws", "tailwind.config.js", "throw new Error('boom');"},
	}

	p := &FileProvider{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := p.ReadJSON(writeConfig(t, tt.file, tt.content)); ok {
				t.Error("ReadJSON() succeeded, want failure")
			}
		})
	}

	if _, ok := p.ReadJSON(filepath.Join(t.TempDir(), "missing.json")); ok {
		t.Error("ReadJSON() succeeded for missing file")
	}
}

func TestFileProviderTimeout(t *testing.T) {
	p := &FileProvider{EvalTimeout: 50 * time.Millisecond}
	path := writeConfig(t, "tailwind.config.js", "while (true) {}")

	start := time.Now()
	if _, ok := p.ReadJSON(path); ok {
		t.Error("ReadJSON() succeeded for endless script")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("ReadJSON() took %v", elapsed)
	}
}

type staticProvider struct {
	tree  any
	calls int
}

func (p *staticProvider) ReadJSON(string) (any, bool) {
	p.calls++
	return p.tree, p.tree != nil
}

func TestResolvePath(t *testing.T) {
	provider := &staticProvider{tree: map[string]any{
		"theme": map[string]any{
			"colors": map[string]any{
				"brand":   "#123456",
				"primary": map[string]any{"DEFAULT": "#0000ff", "500": "#0000aa"},
			},
			"spacing": map[string]any{"4": int64(16)},
			"extend": map[string]any{
				"colors": map[string]any{"accent": "#ff00ff", "brand": "#999999"},
			},
		},
	}}
	cfg := New(provider, "tailwind.config.js", nil)

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"colors.brand", "#123456", true},
		{"'colors.brand'", "#123456", true},
		{`"colors.primary"`, "#0000ff", true},
		{"colors.primary[500]", "#0000aa", true},
		{"colors.accent", "#ff00ff", true},
		{"spacing.4", "", false},
		{"colors.missing", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := cfg.ResolvePath(tt.path)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ResolvePath(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}

	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
	cfg.Invalidate()
	cfg.ResolvePath("colors.brand")
	if provider.calls != 2 {
		t.Errorf("provider called %d times after Invalidate, want 2", provider.calls)
	}
}

func TestResolvePathWithoutConfig(t *testing.T) {
	provider := &staticProvider{}
	cfg := New(provider, "", nil)
	if _, ok := cfg.ResolvePath("colors.brand"); ok {
		t.Error("ResolvePath() succeeded without a config path")
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0", provider.calls)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	if got := Discover(root); got != "" {
		t.Errorf("Discover() = %q, want empty", got)
	}

	mjs := filepath.Join(root, "tailwind.config.mjs")
	if err := os.WriteFile(mjs, []byte("export default {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Discover(root); got != mjs {
		t.Errorf("Discover() = %q, want %q", got, mjs)
	}

	js := filepath.Join(root, "tailwind.config.js")
	if err := os.WriteFile(js, []byte("module.exports = {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Discover(root); got != js {
		t.Errorf("Discover() = %q, want %q", got, js)
	}
}

func TestRewriteModule(t *testing.T) {
	src := "import colors from \"tailwindcss/colors\";\nimport { x as y, z } from './t';\nexport default { c: colors };"
	want := "var colors = require(\"tailwindcss/colors\");\nvar {x: y, z} = require(\"./t\");\nmodule.exports = { c: colors };"
	if got := rewriteModule(src); got != want {
		t.Errorf("rewriteModule() =\n%s\nwant\n%s", got, want)
	}
}
