// Package document indexes every resolvable colour in a text snapshot.
package document

import (
	"cmp"
	"slices"

	"github.com/jmylchreest/tailtint/internal/classify"
	"github.com/jmylchreest/tailtint/internal/colour"
	"github.com/jmylchreest/tailtint/internal/resolve"
)

// ColourSpan is one resolved colour occurrence.
type ColourSpan struct {
	classify.Span
	Kind classify.Kind `json:"kind"`
	// Text is the source text covered by the span.
	Text string `json:"text"`
	// Literal is the colour literal the token resolved to.
	Literal string      `json:"literal"`
	Colour  colour.RGBA `json:"colour"`
}

// Indexer runs the classifier and resolver over whole documents.
type Indexer struct {
	resolver *resolve.Resolver
}

// NewIndexer creates an indexer around a resolver.
func NewIndexer(resolver *resolve.Resolver) *Indexer {
	return &Indexer{resolver: resolver}
}

// Index returns the colour spans of text sorted by start, then end.
//
// Tokens that do not resolve, or resolve to a literal that cannot be parsed,
// are dropped. When two scans produce the same span the later scan wins.
// Spans nested inside another span are removed so only the outermost range
// of a nest is kept.
func (ix *Indexer) Index(text string) []ColourSpan {
	bySpan := make(map[classify.Span]ColourSpan)

	for tok := range ix.resolver.Classifier().All(text) {
		literal, ok := ix.resolver.ResolveToken(tok)
		if !ok {
			continue
		}
		c, ok := colour.Parse(literal)
		if !ok {
			continue
		}
		bySpan[tok.Span] = ColourSpan{
			Span:    tok.Span,
			Kind:    tok.Kind,
			Text:    text[tok.Start:tok.End],
			Literal: literal,
			Colour:  c,
		}
	}

	spans := make([]ColourSpan, 0, len(bySpan))
	for _, s := range bySpan {
		spans = append(spans, s)
	}
	slices.SortFunc(spans, func(a, b ColourSpan) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	return removeNested(spans)
}

// removeNested drops every span strictly contained in another. spans must be
// sorted by start, then end, and hold distinct ranges.
func removeNested(spans []ColourSpan) []ColourSpan {
	out := make([]ColourSpan, 0, len(spans))
	for i, s := range spans {
		nested := false
		for j, o := range spans {
			if i != j && o.Contains(s.Span) {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, s)
		}
	}
	return out
}
