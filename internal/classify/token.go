// Package classify finds colour-bearing substrings in source text: utility
// classes, @apply directives, ring colour properties, class attribute lists
// and CSS custom-property declarations.
package classify

// Kind identifies which grammar produced a token.
type Kind int

const (
	// KindUtility is a utility class such as "hover:bg-red-500/50".
	KindUtility Kind = iota
	// KindApply is a whole "@apply ...;" directive.
	KindApply
	// KindRing is a "--tw-ring-color:" or "--tw-ring-offset-color:" declaration.
	KindRing
	// KindClassAttr is one class word inside a class/className attribute.
	KindClassAttr
	// KindCSSVar is a "--name: value;" custom-property declaration.
	KindCSSVar
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUtility:
		return "utility"
	case KindApply:
		return "apply"
	case KindRing:
		return "ring"
	case KindClassAttr:
		return "class-attr"
	case KindCSSVar:
		return "css-var"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Span is a half-open byte range [Start, End) in the source text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether o lies within s. Equal spans contain each other.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Token is one classified occurrence.
type Token struct {
	Kind Kind
	// Variants is the colon-terminated modifier chain, e.g. "dark:hover:".
	Variants string
	// Utility is the matched utility name, e.g. "bg".
	Utility string
	// Value is the part after "<utility>-" for utility classes.
	Value string
	// Raw is the text the resolver works on: the class itself, the @apply
	// class list or the declaration value.
	Raw string
	// Name is the property name for declarations and the attribute name for
	// class attribute words.
	Name string
	Span
}
