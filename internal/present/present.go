// Package present renders a colour back into candidate class names.
package present

import (
	"strconv"

	"github.com/jmylchreest/tailtint/internal/classify"
	"github.com/jmylchreest/tailtint/internal/colour"
	"github.com/jmylchreest/tailtint/internal/palette"
	"github.com/jmylchreest/tailtint/internal/resolve"
)

// Generator produces ranked class-name candidates for a colour.
type Generator struct {
	classifier *classify.Classifier
	palettes   resolve.PaletteSource
}

// NewGenerator creates a generator. A nil palette source uses the built-in
// table only.
func NewGenerator(classifier *classify.Classifier, palettes resolve.PaletteSource) *Generator {
	if classifier == nil {
		classifier = classify.New(nil)
	}
	return &Generator{classifier: classifier, palettes: palettes}
}

// Present returns candidates for c under a "<variants><utility>-" prefix.
//
// With a prefix the order is: the nearest palette colour, every other theme
// colour by ascending distance, then the arbitrary value "<prefix>[#hex]".
// Translucent colours carry a "/<percent>" suffix. Without a prefix the only
// candidate is the hex value, with an alpha byte when translucent.
func (g *Generator) Present(c colour.RGBA, prefix string) []string {
	if prefix == "" {
		return []string{c.HexAlpha()}
	}

	snap := g.snapshot()
	suffix := opacitySuffix(c)

	var out []string
	seen := make(map[string]bool)
	add := func(candidate string) {
		if !seen[candidate] {
			seen[candidate] = true
			out = append(out, candidate)
		}
	}

	if m, ok := palette.Nearest(c, snap.Palette); ok {
		add(prefix + m.Name() + suffix)
	}
	for _, m := range palette.Rank(c, snap.Palette.Theme()) {
		add(prefix + m.Name() + suffix)
	}
	add(prefix + "[" + c.Hex() + "]" + suffix)

	return out
}

// PresentFor derives the prefix from the text currently at the colour's
// location, e.g. "hover:bg-red-500" gives "hover:bg-".
func (g *Generator) PresentFor(c colour.RGBA, originalText string) []string {
	return g.Present(c, g.classifier.Prefix(originalText))
}

func (g *Generator) snapshot() *palette.Snapshot {
	if g.palettes == nil {
		return &palette.Snapshot{Palette: palette.Builtin()}
	}
	return g.palettes.Snapshot()
}

func opacitySuffix(c colour.RGBA) string {
	if !c.Translucent() {
		return ""
	}
	return "/" + strconv.Itoa(c.OpacityPercent())
}
