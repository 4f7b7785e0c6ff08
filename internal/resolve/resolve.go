// Package resolve turns classified tokens into colour literals using the
// palette, theme variables, arbitrary values and theme() references.
package resolve

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/tailtint/internal/classify"
	"github.com/jmylchreest/tailtint/internal/colour"
	"github.com/jmylchreest/tailtint/internal/palette"
)

// PaletteSource provides palette snapshots. *palette.Store implements it.
type PaletteSource interface {
	Snapshot() *palette.Snapshot
}

// ThemePathResolver resolves dotted theme() paths against a project
// configuration tree.
type ThemePathResolver interface {
	ResolvePath(dotted string) (string, bool)
}

var (
	bracketRegex = regexp.MustCompile(`\[([^\]]+)\](?:/(\d{1,3}))?`)
	funcRegex    = regexp.MustCompile(`^(?i:rgba?|hsla?|oklch|oklab)\(.*\)$`)
	varRegex     = regexp.MustCompile(`var\(\s*--([A-Za-z0-9_-]+)\s*(?:,[^)]*)?\)`)
	themeRegex   = regexp.MustCompile(`^theme\(([^)]+)\)$`)
	opacityRegex = regexp.MustCompile(`^(.+?)(?:/(\d{1,3}))?$`)
)

// Resolver maps tokens to colour literals. It holds no mutable state of its
// own; each call works on one palette snapshot.
type Resolver struct {
	classifier *classify.Classifier
	palettes   PaletteSource
	theme      ThemePathResolver
}

// New creates a resolver. theme may be nil, in which case theme() paths are
// answered from the palette only.
func New(classifier *classify.Classifier, palettes PaletteSource, theme ThemePathResolver) *Resolver {
	if classifier == nil {
		classifier = classify.New(nil)
	}
	return &Resolver{
		classifier: classifier,
		palettes:   palettes,
		theme:      theme,
	}
}

// Classifier returns the classifier used for parsing class words.
func (r *Resolver) Classifier() *classify.Classifier {
	return r.classifier
}

// Resolve returns the colour literal a single utility class denotes.
//
// Bracketed values are tried first: hex and colour functions are returned
// verbatim, var() is looked up in the theme variables and theme() is
// delegated to the configuration tree. Otherwise the class is resolved
// against the palette as <family>[-<shade>][/<opacity>]. A "/NN" suffix
// bakes opacity into the result as rgba().
func (r *Resolver) Resolve(class string) (string, bool) {
	return r.resolveClass(strings.TrimSpace(class), r.snapshot())
}

// ResolveApply returns the colour of an @apply class list. Classes with a
// bracketed arbitrary value win in source order; failing that, the first
// class that resolves against the palette is used. Classes whose value is
// not a parseable colour, such as an unknown var(), are passed over.
func (r *Resolver) ResolveApply(body string) (string, bool) {
	snap := r.snapshot()
	classes := strings.Fields(body)

	for _, arbitrary := range []bool{true, false} {
		for _, class := range classes {
			if strings.Contains(class, "[") != arbitrary {
				continue
			}
			if value, ok := r.resolveClass(class, snap); ok && colour.IsLiteral(value) {
				return value, true
			}
		}
	}
	return "", false
}

// ResolveLiteral resolves a declaration value that should already be a
// colour, such as a --tw-ring-color value. var() references are looked up
// in the theme variables.
func (r *Resolver) ResolveLiteral(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if m := varRegex.FindStringSubmatch(value); m != nil && m[0] == value {
		if raw, ok := lookupVariable(r.snapshot().Variables, m[1]); ok {
			return palette.Literal(raw), true
		}
		return "", false
	}
	if colour.IsLiteral(value) {
		return value, true
	}
	return "", false
}

// ResolveDeclaration resolves a custom-property value. Bare HSL components
// become hsl(h, s%, l%). A value that references another variable, such as
// hsl(var(--primary)), resolves through the theme variables.
func (r *Resolver) ResolveDeclaration(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if palette.IsComponents(value) {
		return commaHSL(value), true
	}

	if m := varRegex.FindStringSubmatch(value); m != nil {
		raw, ok := lookupVariable(r.snapshot().Variables, m[1])
		if !ok {
			return "", false
		}
		raw = strings.TrimSpace(raw)
		if palette.IsComponents(raw) {
			return commaHSL(raw), true
		}
		if colour.IsLiteral(raw) {
			return raw, true
		}
		return "", false
	}

	if colour.IsLiteral(value) {
		return value, true
	}
	return "", false
}

// ResolveToken dispatches on the token kind.
func (r *Resolver) ResolveToken(tok classify.Token) (string, bool) {
	switch tok.Kind {
	case classify.KindUtility, classify.KindClassAttr:
		return r.Resolve(tok.Raw)
	case classify.KindApply:
		return r.ResolveApply(tok.Raw)
	case classify.KindRing:
		return r.ResolveLiteral(tok.Raw)
	case classify.KindCSSVar:
		return r.ResolveDeclaration(tok.Raw)
	default:
		return "", false
	}
}

func (r *Resolver) snapshot() *palette.Snapshot {
	if r.palettes == nil {
		return &palette.Snapshot{Palette: palette.Builtin()}
	}
	return r.palettes.Snapshot()
}

func (r *Resolver) resolveClass(class string, snap *palette.Snapshot) (string, bool) {
	if class == "" {
		return "", false
	}
	if m := bracketRegex.FindStringSubmatch(class); m != nil {
		return r.resolveArbitrary(strings.TrimSpace(m[1]), m[2], snap)
	}
	return r.resolvePalette(class, snap.Palette)
}

// resolveArbitrary handles the content of a bracketed value.
func (r *Resolver) resolveArbitrary(value, opacity string, snap *palette.Snapshot) (string, bool) {
	var literal string
	switch {
	case strings.HasPrefix(value, "#"):
		literal = value
	case funcRegex.MatchString(value):
		literal = value
	case strings.HasPrefix(value, "var("):
		m := varRegex.FindStringSubmatch(value)
		if m == nil {
			return "", false
		}
		raw, ok := lookupVariable(snap.Variables, m[1])
		if !ok {
			// Still renderable by a consumer that knows the variable.
			return value, true
		}
		literal = palette.Literal(raw)
	case themeRegex.MatchString(value):
		path := themeRegex.FindStringSubmatch(value)[1]
		v, ok := r.resolveThemePath(path, snap)
		if !ok {
			return "", false
		}
		literal = v
	default:
		return "", false
	}
	return applyOpacity(literal, opacity), true
}

// resolvePalette resolves <utility>-<family>[-<shade>][/<opacity>].
func (r *Resolver) resolvePalette(class string, p *palette.Palette) (string, bool) {
	tok, ok := r.classifier.Parse(class)
	if !ok {
		return "", false
	}
	m := opacityRegex.FindStringSubmatch(tok.Value)
	if m == nil {
		return "", false
	}
	family, shade := palette.SplitName(m[1])
	value, ok := p.Value(family, shade)
	if !ok {
		return "", false
	}
	return applyOpacity(value, m[2]), true
}

// resolveThemePath answers theme(path), first from the configuration tree,
// then from the palette for colors.<family>[.<shade>] and --color-* paths.
func (r *Resolver) resolveThemePath(path string, snap *palette.Snapshot) (string, bool) {
	path = strings.TrimSpace(strings.NewReplacer(`"`, "", "'", "").Replace(path))
	if path == "" {
		return "", false
	}
	if r.theme != nil {
		if v, ok := r.theme.ResolvePath(path); ok {
			return v, true
		}
	}

	if name, ok := strings.CutPrefix(path, "--color-"); ok {
		family, shade := palette.SplitName(name)
		return snap.Palette.Value(family, shade)
	}

	rest, ok := strings.CutPrefix(path, "colors.")
	if !ok {
		return "", false
	}
	family, shade, found := strings.Cut(rest, ".")
	if !found {
		shade = palette.DefaultShade
	}
	return snap.Palette.Value(family, shade)
}

// lookupVariable finds a theme variable by name, also trying the name with
// the "color-" prefix added or removed.
func lookupVariable(vars *palette.Variables, name string) (string, bool) {
	if v, ok := vars.Get(name); ok {
		return v, true
	}
	if stripped, ok := strings.CutPrefix(name, "color-"); ok {
		return vars.Get(stripped)
	}
	return vars.Get("color-" + name)
}

// applyOpacity bakes an opacity suffix into literal. Literals that cannot be
// parsed are returned unchanged.
func applyOpacity(literal, opacity string) string {
	if opacity == "" {
		return literal
	}
	percent, err := strconv.Atoi(opacity)
	if err != nil {
		return literal
	}
	if out, ok := palette.WithOpacity(literal, percent); ok {
		return out
	}
	return literal
}

// commaHSL renders bare components "h s% l%" as "hsl(h, s%, l%)".
func commaHSL(components string) string {
	return "hsl(" + strings.Join(strings.Fields(components), ", ") + ")"
}
