package palette

import (
	"iter"
	"regexp"
	"strings"
)

// componentsRegex matches bare HSL components such as "120 80% 28%".
var componentsRegex = regexp.MustCompile(`^[0-9.]+\s+[0-9.]+%\s+[0-9.]+%?`)

// IsComponents reports whether a raw theme value is bare HSL components.
func IsComponents(raw string) bool {
	return componentsRegex.MatchString(strings.TrimSpace(raw))
}

// Literal turns a raw theme value into a colour literal. Bare HSL
// components are wrapped in hsl(); anything else is returned trimmed.
func Literal(raw string) string {
	raw = strings.TrimSpace(raw)
	if IsComponents(raw) {
		return "hsl(" + raw + ")"
	}
	return raw
}

// Variables is an insertion-ordered table of theme variable names to raw
// values. A nil *Variables behaves as an empty table.
type Variables struct {
	names  []string
	values map[string]string
}

// NewVariables returns an empty table.
func NewVariables() *Variables {
	return &Variables{values: make(map[string]string)}
}

// Set adds or replaces a variable. Replacing keeps the original position.
func (v *Variables) Set(name, value string) {
	if v.values == nil {
		v.values = make(map[string]string)
	}
	if _, ok := v.values[name]; !ok {
		v.names = append(v.names, name)
	}
	v.values[name] = value
}

// SetDefault adds a variable only if the name is not present yet.
// It reports whether the value was stored.
func (v *Variables) SetDefault(name, value string) bool {
	if _, ok := v.values[name]; ok {
		return false
	}
	v.Set(name, value)
	return true
}

// Get returns the raw value of a variable.
func (v *Variables) Get(name string) (string, bool) {
	if v == nil {
		return "", false
	}
	value, ok := v.values[name]
	return value, ok
}

// Len returns the number of variables.
func (v *Variables) Len() int {
	if v == nil {
		return 0
	}
	return len(v.names)
}

// Names returns the variable names in insertion order.
func (v *Variables) Names() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// All returns an iterator over name/value pairs in insertion order.
func (v *Variables) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if v == nil {
			return
		}
		for _, name := range v.names {
			if !yield(name, v.values[name]) {
				return
			}
		}
	}
}

// Merge copies every variable of other into v; other wins on conflicts.
func (v *Variables) Merge(other *Variables) {
	for name, value := range other.All() {
		v.Set(name, value)
	}
}
