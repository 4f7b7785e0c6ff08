// Package palette holds the merged colour table: the built-in shades plus
// project theme variables, with a cache that rebuilds on demand.
package palette

import (
	"iter"
	"regexp"

	"github.com/jmylchreest/tailtint/internal/colour"
)

// DefaultShade is the shade key for colours addressed by family name alone.
const DefaultShade = "DEFAULT"

// shadeNameRegex splits "primary-500" into family and shade.
var shadeNameRegex = regexp.MustCompile(`^(.+)-(\d{2,4})$`)

// Entry is one colour in the palette.
type Entry struct {
	Family string `json:"family"`
	Shade  string `json:"shade"`
	// Value is the colour literal as written at its source (not normalised).
	Value string `json:"value"`
	// Theme is true when the value came from project theme variables.
	Theme bool `json:"theme"`
}

// Name returns the class-name fragment for the entry: "family" for the
// DEFAULT shade, "family-shade" otherwise.
func (e Entry) Name() string {
	return JoinName(e.Family, e.Shade)
}

// JoinName renders a family and shade as a class-name fragment.
func JoinName(family, shade string) string {
	if shade == DefaultShade || shade == "" {
		return family
	}
	return family + "-" + shade
}

// SplitName splits a theme variable name into family and shade. Names ending
// in a two to four digit segment address that shade; anything else is DEFAULT.
func SplitName(name string) (family, shade string) {
	if m := shadeNameRegex.FindStringSubmatch(name); m != nil {
		return m[1], m[2]
	}
	return name, DefaultShade
}

type family struct {
	shades  []string
	entries map[string]Entry
}

// Palette maps family to shade to colour. Iteration follows insertion order:
// families in the order first seen, shades in the order first set.
type Palette struct {
	order    []string
	families map[string]*family
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{
		families: make(map[string]*family),
	}
}

// Set adds or replaces a colour. Replacing keeps the original position.
func (p *Palette) Set(familyName, shade, value string, theme bool) {
	f, ok := p.families[familyName]
	if !ok {
		f = &family{entries: make(map[string]Entry)}
		p.families[familyName] = f
		p.order = append(p.order, familyName)
	}
	if _, exists := f.entries[shade]; !exists {
		f.shades = append(f.shades, shade)
	}
	f.entries[shade] = Entry{Family: familyName, Shade: shade, Value: value, Theme: theme}
}

// Lookup returns the entry for a family and shade.
func (p *Palette) Lookup(familyName, shade string) (Entry, bool) {
	f, ok := p.families[familyName]
	if !ok {
		return Entry{}, false
	}
	e, ok := f.entries[shade]
	return e, ok
}

// Value returns the colour literal for a family and shade.
func (p *Palette) Value(familyName, shade string) (string, bool) {
	e, ok := p.Lookup(familyName, shade)
	return e.Value, ok
}

// HasFamily reports whether the palette has any shade of the family.
func (p *Palette) HasFamily(name string) bool {
	_, ok := p.families[name]
	return ok
}

// Families returns the family names in iteration order.
func (p *Palette) Families() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Shades returns the shade keys of a family in iteration order.
func (p *Palette) Shades(familyName string) []string {
	f, ok := p.families[familyName]
	if !ok {
		return nil
	}
	out := make([]string, len(f.shades))
	copy(out, f.shades)
	return out
}

// Len returns the number of entries across all families.
func (p *Palette) Len() int {
	n := 0
	for _, f := range p.families {
		n += len(f.entries)
	}
	return n
}

// All returns an iterator over every entry in palette order.
func (p *Palette) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, name := range p.order {
			f := p.families[name]
			for _, shade := range f.shades {
				if !yield(f.entries[shade]) {
					return
				}
			}
		}
	}
}

// Theme returns an iterator over entries sourced from theme variables.
func (p *Palette) Theme() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for e := range p.All() {
			if e.Theme && !yield(e) {
				return
			}
		}
	}
}

// Merge builds the palette for a set of theme variables: the built-in table
// first, then each variable folded in by SplitName. Variables never remove a
// built-in family; they add families or shades, or replace a shade's value.
// Variables whose value is not a colour literal are skipped.
func Merge(vars *Variables) *Palette {
	p := Builtin()
	for name, value := range vars.All() {
		literal := Literal(value)
		if !colour.IsLiteral(literal) {
			continue
		}
		familyName, shade := SplitName(name)
		p.Set(familyName, shade, literal, true)
	}
	return p
}
