package classify

import (
	"cmp"
	"iter"
	"regexp"
	"slices"
	"strings"
)

// DefaultUtilities are the colour-bearing utilities recognised when the
// configuration does not name any.
var DefaultUtilities = []string{
	"bg",
	"text",
	"border",
	"ring",
	"ring-offset",
	"fill",
	"stroke",
	"decoration",
	"outline",
	"shadow",
	"inset-shadow",
	"ring-inset",
	"inset-ring",
	"accent",
	"caret",
	"divide",
	"placeholder",
	"from",
	"via",
	"to",
}

var (
	applyRegex  = regexp.MustCompile(`@apply\s+([^;{}]+);`)
	ringRegex   = regexp.MustCompile(`--tw-(ring-color|ring-offset-color)\s*:\s*([^;{}]+);`)
	cssVarRegex = regexp.MustCompile(`--([A-Za-z0-9_-]+)\s*:\s*([^;{}]+);`)
	classRegex  = regexp.MustCompile("\\b(class|className)\\s*=\\s*(?:\"([^\"]*)\"|'([^']*)'|\\{\\s*`([^`]*)`\\s*\\})|\\bclass:([^\\s=>\"']+)\\s*=(?:\\s*(?:\"([^\"]*)\"|'([^']*)'))?")
	wordRegex   = regexp.MustCompile(`\S+`)
	blockRegex  = regexp.MustCompile(`(:root|\.dark|@theme(?:\s+inline)?)\s*\{([^}]*)\}`)
)

// Classifier scans text for colour tokens using a utility allow-list.
// It is immutable after New and safe for concurrent use.
type Classifier struct {
	utilities  []string
	scanRegex  *regexp.Regexp
	parseRegex *regexp.Regexp
	prefix     *regexp.Regexp
}

// New builds a classifier for the given utilities. An empty list selects
// DefaultUtilities.
func New(utilities []string) *Classifier {
	if len(utilities) == 0 {
		utilities = DefaultUtilities
	}

	// Longest first so "inset-shadow" wins over "shadow".
	sorted := slices.Clone(utilities)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	sorted = slices.Compact(sorted)

	quoted := make([]string, 0, len(sorted))
	for _, u := range sorted {
		if u = strings.TrimSpace(u); u != "" {
			quoted = append(quoted, regexp.QuoteMeta(u))
		}
	}
	alt := strings.Join(quoted, "|")

	// Groups: 1 variants, 2 utility, 3 arbitrary value, 4 arbitrary opacity,
	// 5 colour name, 6 shade, 7 opacity.
	scan := `((?:[a-z0-9-]+:)*)(` + alt + `)-(?:\[([^\]\s]+)\](?:/(\d{1,3}))?|([a-z]+(?:-[a-z]+)*)(?:-(\d{2,4}))?(?:/(\d{1,3}))?)`

	return &Classifier{
		utilities:  sorted,
		scanRegex:  regexp.MustCompile(scan),
		parseRegex: regexp.MustCompile(`^((?:[a-z0-9-]+:)*)(` + alt + `)-(.+)$`),
		prefix:     regexp.MustCompile(`^((?:[a-z0-9-]+:)*)(` + alt + `)-`),
	}
}

// Utilities returns the allow-list in matching order (longest first).
func (c *Classifier) Utilities() []string {
	return slices.Clone(c.utilities)
}

// All runs every scan over text, one grammar after another.
func (c *Classifier) All(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, scan := range []func(string) iter.Seq[Token]{
			c.UtilityClasses,
			c.ApplyDirectives,
			c.RingDeclarations,
			c.ClassAttributes,
			c.CSSVariables,
		} {
			for tok := range scan(text) {
				if !yield(tok) {
					return
				}
			}
		}
	}
}

// UtilityClasses yields utility classes such as "dark:bg-red-500/50" or
// "text-[#ff0000]". A token must sit on class boundaries: the bytes before
// and after it may not be letters, digits, '_' or '-'.
func (c *Classifier) UtilityClasses(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for m := range scan(c.scanRegex, text) {
			start, end := m[0], m[1]
			if (start > 0 && isClassByte(text[start-1])) || (end < len(text) && isClassByte(text[end])) {
				continue
			}
			utility := group(text, m, 2)
			tok := Token{
				Kind:     KindUtility,
				Variants: group(text, m, 1),
				Utility:  utility,
				Value:    text[m[5]+1 : end],
				Raw:      text[start:end],
				Span:     Span{Start: start, End: end},
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// ApplyDirectives yields one token per "@apply <classes>;" directive. The
// span covers the directive; Raw is the class list.
func (c *Classifier) ApplyDirectives(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for m := range scan(applyRegex, text) {
			tok := Token{
				Kind: KindApply,
				Raw:  strings.TrimSpace(group(text, m, 1)),
				Span: Span{Start: m[0], End: m[1]},
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// RingDeclarations yields "--tw-ring-color: <value>;" and
// "--tw-ring-offset-color: <value>;" declarations.
func (c *Classifier) RingDeclarations(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for m := range scan(ringRegex, text) {
			tok := Token{
				Kind: KindRing,
				Name: "tw-" + group(text, m, 1),
				Raw:  strings.TrimSpace(group(text, m, 2)),
				Span: Span{Start: m[0], End: m[1]},
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// ClassAttributes yields each class word inside class="...", className="...",
// className={`...`}, and for class:<name>= bindings the toggled class plus
// any words of a quoted value. Quotes, braces, commas and trailing colons
// around a word are not part of it.
func (c *Classifier) ClassAttributes(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for m := range scan(classRegex, text) {
			attr := group(text, m, 1)
			lists := []int{2, 3, 4}

			// class:<name>= binding: the name is a candidate, as is every
			// word of a quoted value.
			if m[10] >= 0 {
				attr = "class:"
				if !yield(c.classWord(text[m[10]:m[11]], attr, m[10])) {
					return
				}
				lists = []int{6, 7}
			}

			for _, g := range lists {
				if m[2*g] < 0 {
					continue
				}
				if !c.yieldWords(text, m[2*g], m[2*g+1], attr, yield) {
					return
				}
			}
		}
	}
}

// yieldWords yields a class attribute token for each word of
// text[start:end]. It reports false once yield asks to stop.
func (c *Classifier) yieldWords(text string, start, end int, attr string, yield func(Token) bool) bool {
	list := text[start:end]
	for _, w := range wordRegex.FindAllStringIndex(list, -1) {
		ws, we := trimWord(list, w[0], w[1])
		if ws >= we {
			continue
		}
		if !yield(c.classWord(list[ws:we], attr, start+ws)) {
			return false
		}
	}
	return true
}

// CSSVariables yields every "--name: value;" declaration in text.
func (c *Classifier) CSSVariables(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for d := range Declarations(text) {
			tok := Token{
				Kind: KindCSSVar,
				Name: d.Name,
				Raw:  d.Value,
				Span: d.Span,
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Parse splits a single class word into variants, utility and value.
// It reports false when the word does not start with a known utility.
func (c *Classifier) Parse(word string) (Token, bool) {
	m := c.parseRegex.FindStringSubmatch(word)
	if m == nil {
		return Token{}, false
	}
	return Token{
		Kind:     KindUtility,
		Variants: m[1],
		Utility:  m[2],
		Value:    m[3],
		Raw:      word,
		Span:     Span{Start: 0, End: len(word)},
	}, true
}

// Prefix returns the "<variants><utility>-" prefix of a class, or "" when
// the text does not start with a known utility.
func (c *Classifier) Prefix(text string) string {
	return c.prefix.FindString(strings.TrimSpace(text))
}

// classWord builds a class attribute token for a word at offset.
func (c *Classifier) classWord(word, attr string, offset int) Token {
	tok := Token{
		Kind: KindClassAttr,
		Raw:  word,
		Name: attr,
		Span: Span{Start: offset, End: offset + len(word)},
	}
	if parsed, ok := c.Parse(word); ok {
		tok.Variants = parsed.Variants
		tok.Utility = parsed.Utility
		tok.Value = parsed.Value
	}
	return tok
}

// trimWord strips wrapping punctuation from list[start:end].
func trimWord(list string, start, end int) (int, int) {
	const wrap = "\"'`{},"
	for start < end && strings.IndexByte(wrap, list[start]) >= 0 {
		start++
	}
	for end > start && strings.IndexByte(wrap+":", list[end-1]) >= 0 {
		end--
	}
	return start, end
}

// scan lazily yields the absolute submatch indices of successive
// non-overlapping matches of re in text.
func scan(re *regexp.Regexp, text string) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		pos := 0
		for pos < len(text) {
			loc := re.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			for i := range loc {
				if loc[i] >= 0 {
					loc[i] += pos
				}
			}
			next := loc[1]
			if next == loc[0] {
				next++
			}
			if !yield(loc) {
				return
			}
			pos = next
		}
	}
}

// group returns submatch i, or "" when it did not participate.
func group(text string, m []int, i int) string {
	if m[2*i] < 0 {
		return ""
	}
	return text[m[2*i]:m[2*i+1]]
}

func isClassByte(b byte) bool {
	return b == '-' || b == '_' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
