// Package config loads tailtint settings from the project file
// tailwind-color-picker.json, TAILTINT_* environment variables and flags.
package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/tailtint/internal/classify"
)

const (
	// FileName is the project configuration file, read from the root.
	FileName = "tailwind-color-picker.json"

	// EnvPrefix prefixes environment overrides, e.g. TAILTINT_CSSFILEPATH.
	EnvPrefix = "TAILTINT"
)

// Configuration keys, as written in FileName.
const (
	KeyUtilities   = "utilities"
	KeyCSSFilePath = "cssFilePath"
	KeyConfigFile  = "configFile"
	KeyThemeURL    = "themeURL"
)

// Flag names bound onto the configuration keys.
const (
	FlagRoot           = "root"
	FlagUtilities      = "utilities"
	FlagCSS            = "css"
	FlagTailwindConfig = "tailwind-config"
	FlagThemeURL       = "theme-url"
)

var flagKeys = map[string]string{
	FlagUtilities:      KeyUtilities,
	FlagCSS:            KeyCSSFilePath,
	FlagTailwindConfig: KeyConfigFile,
	FlagThemeURL:       KeyThemeURL,
}

// Config holds resolved settings.
type Config struct {
	// Root is the absolute project directory.
	Root string `json:"root"`
	// Utilities is the colour-bearing utility allow-list.
	Utilities []string `json:"utilities"`
	// CSSFilePath is an extra stylesheet, relative to Root.
	CSSFilePath string `json:"cssFilePath,omitempty"`
	// ConfigFile is the Tailwind config used for theme() lookups. Empty
	// means discover one under Root.
	ConfigFile string `json:"configFile,omitempty"`
	// ThemeURL is a remote stylesheet merged after local files.
	ThemeURL string `json:"themeURL,omitempty"`
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagRoot, ".", "Project root directory")
	fs.StringSlice(FlagUtilities, nil, "Colour-bearing utilities (default: built-in list)")
	fs.String(FlagCSS, "", "Extra stylesheet with theme colours, relative to the root")
	fs.String(FlagTailwindConfig, "", "Tailwind config file for theme() lookups")
	fs.String(FlagThemeURL, "", "Remote stylesheet with theme colours")
}

// Load resolves settings for the project root named by flags (or "." when
// flags is nil). Priority is flag, environment, project file, default.
// A missing or malformed project file is logged at Debug and ignored.
func Load(flags *pflag.FlagSet, logger hclog.Logger) *Config {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("config")

	root := "."
	if flags != nil {
		if f := flags.Lookup(FlagRoot); f != nil && f.Value.String() != "" {
			root = f.Value.String()
		}
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	v := viper.New()
	v.SetDefault(KeyUtilities, classify.DefaultUtilities)
	v.SetDefault(KeyCSSFilePath, "")
	v.SetDefault(KeyConfigFile, "")
	v.SetDefault(KeyThemeURL, "")

	v.SetConfigFile(filepath.Join(root, FileName))
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		logger.Debug("project config not loaded", "path", v.ConfigFileUsed(), "error", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	cfg := &Config{
		Root:        root,
		Utilities:   cleanUtilities(v.GetStringSlice(KeyUtilities)),
		CSSFilePath: strings.TrimSpace(v.GetString(KeyCSSFilePath)),
		ConfigFile:  strings.TrimSpace(v.GetString(KeyConfigFile)),
		ThemeURL:    strings.TrimSpace(v.GetString(KeyThemeURL)),
	}
	logger.Debug("configuration loaded", "root", cfg.Root, "utilities", len(cfg.Utilities))
	return cfg
}

// ConfigFilePath returns ConfigFile resolved against Root.
func (c *Config) ConfigFilePath() string {
	if c.ConfigFile == "" || filepath.IsAbs(c.ConfigFile) {
		return c.ConfigFile
	}
	return filepath.Join(c.Root, c.ConfigFile)
}

// cleanUtilities trims entries, splits comma lists and drops duplicates.
// An empty result falls back to the defaults.
func cleanUtilities(in []string) []string {
	var out []string
	for _, item := range in {
		for _, u := range strings.Split(item, ",") {
			u = strings.TrimSpace(u)
			if u != "" && !slices.Contains(out, u) {
				out = append(out, u)
			}
		}
	}
	if len(out) == 0 {
		return slices.Clone(classify.DefaultUtilities)
	}
	return out
}
