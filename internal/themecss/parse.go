// Package themecss reads project theme colours from stylesheets: @theme
// blocks, :root and .dark custom properties, local files or a remote URL.
package themecss

import (
	"regexp"
	"strings"

	"github.com/jmylchreest/tailtint/internal/classify"
	"github.com/jmylchreest/tailtint/internal/palette"
)

var varRefRegex = regexp.MustCompile(`var\(--([A-Za-z0-9_-]+)\)`)

// Parse extracts theme colours from stylesheet content.
//
// Every "--color-<name>: <value>;" inside an @theme block defines <name>. A
// value embedding var(--x) takes the first :root or .dark definition of
// --x, keeping an hsl( or rgb( wrapper; entries whose reference has no
// definition are left out. Custom properties of the first
// :root block whose values look like colours are added after that, unless
// an @theme entry already defined the name.
func Parse(content string) *palette.Variables {
	vars := palette.NewVariables()

	defs := make(map[string]string)
	var root *classify.Block
	for b := range classify.Blocks(content) {
		if b.Selector != ":root" && b.Selector != ".dark" {
			continue
		}
		for d := range classify.Declarations(b.Body) {
			if _, ok := defs[d.Name]; !ok {
				defs[d.Name] = d.Value
			}
		}
		if b.Selector == ":root" && root == nil {
			root = &b
		}
	}

	for b := range classify.Blocks(content) {
		if b.Selector != "@theme" {
			continue
		}
		for d := range classify.Declarations(b.Body) {
			name, ok := strings.CutPrefix(d.Name, "color-")
			if !ok || name == "" {
				continue
			}
			value, ok := substitute(d.Value, defs)
			if !ok {
				continue
			}
			vars.Set(name, value)
		}
	}

	if root != nil {
		for d := range classify.Declarations(root.Body) {
			if looksLikeColour(d.Value) {
				vars.SetDefault(d.Name, d.Value)
			}
		}
	}

	return vars
}

// substitute replaces a var(--x) reference with the definition of --x.
// It reports false when --x has no definition.
func substitute(value string, defs map[string]string) (string, bool) {
	m := varRefRegex.FindStringSubmatch(value)
	if m == nil {
		return value, true
	}
	resolved, ok := defs[m[1]]
	if !ok {
		return "", false
	}
	switch {
	case strings.HasPrefix(value, "hsl("):
		return "hsl(" + resolved + ")", true
	case strings.HasPrefix(value, "rgb("):
		return "rgb(" + resolved + ")", true
	default:
		return resolved, true
	}
}

func looksLikeColour(value string) bool {
	for _, prefix := range []string{"#", "hsl", "rgb", "oklch", "oklab"} {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return palette.IsComponents(value)
}
