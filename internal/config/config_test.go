package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tailtint/internal/classify"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return fs
}

func writeProjectFile(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	root := t.TempDir()
	cfg := Load(newFlags(t, "--root", root), nil)

	if cfg.Root != root {
		t.Errorf("Root = %q, want %q", cfg.Root, root)
	}
	if diff := cmp.Diff(classify.DefaultUtilities, cfg.Utilities); diff != "" {
		t.Errorf("Utilities mismatch (-want +got):\n%s", diff)
	}
	if cfg.CSSFilePath != "" || cfg.ConfigFile != "" || cfg.ThemeURL != "" {
		t.Errorf("unexpected values: %+v", cfg)
	}
}

func TestLoadProjectFile(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, `{
  "utilities": ["bg", "text", " bg ", "foo"],
  "cssFilePath": "styles/theme.css",
  "configFile": "tailwind.config.cjs"
}`)

	cfg := Load(newFlags(t, "--root", root), nil)

	if diff := cmp.Diff([]string{"bg", "text", "foo"}, cfg.Utilities); diff != "" {
		t.Errorf("Utilities mismatch (-want +got):\n%s", diff)
	}
	if cfg.CSSFilePath != "styles/theme.css" {
		t.Errorf("CSSFilePath = %q", cfg.CSSFilePath)
	}
	if got, want := cfg.ConfigFilePath(), filepath.Join(root, "tailwind.config.cjs"); got != want {
		t.Errorf("ConfigFilePath() = %q, want %q", got, want)
	}
}

func TestLoadPriority(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, `{"cssFilePath": "from-file.css", "themeURL": "https://file.example/app.css"}`)
	t.Setenv("TAILTINT_THEMEURL", "https://env.example/app.css")
	t.Setenv("TAILTINT_UTILITIES", "bg,stroke")

	cfg := Load(newFlags(t, "--root", root, "--css", "from-flag.css"), nil)

	if cfg.CSSFilePath != "from-flag.css" {
		t.Errorf("CSSFilePath = %q, want flag value", cfg.CSSFilePath)
	}
	if cfg.ThemeURL != "https://env.example/app.css" {
		t.Errorf("ThemeURL = %q, want env value", cfg.ThemeURL)
	}
	if diff := cmp.Diff([]string{"bg", "stroke"}, cfg.Utilities); diff != "" {
		t.Errorf("Utilities mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadUtilitiesFlag(t *testing.T) {
	cfg := Load(newFlags(t, "--root", t.TempDir(), "--utilities", "bg,text", "--utilities", "fill"), nil)
	if diff := cmp.Diff([]string{"bg", "text", "fill"}, cfg.Utilities); diff != "" {
		t.Errorf("Utilities mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, `{"utilities": [`)

	cfg := Load(newFlags(t, "--root", root), nil)
	if diff := cmp.Diff(classify.DefaultUtilities, cfg.Utilities); diff != "" {
		t.Errorf("Utilities mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyUtilities(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, `{"utilities": []}`)

	cfg := Load(newFlags(t, "--root", root), nil)
	if diff := cmp.Diff(classify.DefaultUtilities, cfg.Utilities); diff != "" {
		t.Errorf("Utilities mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigFilePathAbsolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "tw.json")
	cfg := &Config{Root: "/project", ConfigFile: abs}
	if got := cfg.ConfigFilePath(); got != abs {
		t.Errorf("ConfigFilePath() = %q, want %q", got, abs)
	}
	if got := (&Config{Root: "/project"}).ConfigFilePath(); got != "" {
		t.Errorf("ConfigFilePath() = %q, want empty", got)
	}
}
