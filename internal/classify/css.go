package classify

import (
	"iter"
	"strings"
)

// Declaration is one "--name: value;" custom-property declaration.
type Declaration struct {
	// Name excludes the leading "--".
	Name  string
	Value string
	Span
}

// Block is the body of a ":root", ".dark" or "@theme" rule.
type Block struct {
	Selector string
	Body     string
	// Offset is the byte offset of Body in the scanned text.
	Offset int
}

// Declarations yields custom-property declarations in text, in source order.
// Values are trimmed; spans cover the whole declaration including ';'.
func Declarations(text string) iter.Seq[Declaration] {
	return func(yield func(Declaration) bool) {
		for m := range scan(cssVarRegex, text) {
			d := Declaration{
				Name:  group(text, m, 1),
				Value: strings.TrimSpace(group(text, m, 2)),
				Span:  Span{Start: m[0], End: m[1]},
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Blocks yields theme-bearing rule bodies in source order. "@theme inline"
// is reported with the selector "@theme". Nested braces are not supported.
func Blocks(text string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for m := range scan(blockRegex, text) {
			selector := group(text, m, 1)
			if strings.HasPrefix(selector, "@theme") {
				selector = "@theme"
			}
			b := Block{
				Selector: selector,
				Body:     group(text, m, 2),
				Offset:   m[4],
			}
			if !yield(b) {
				return
			}
		}
	}
}
