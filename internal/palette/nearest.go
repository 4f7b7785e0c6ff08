package palette

import (
	"iter"
	"slices"

	"github.com/jmylchreest/tailtint/internal/colour"
)

// Match is a palette entry together with its distance to a target colour.
type Match struct {
	Entry
	// Distance is the squared Euclidean RGB distance to the target.
	Distance int
}

// Nearest finds the palette entry closest to target under squared Euclidean
// distance over 0-255 RGB channels. Entries that do not parse are skipped.
// Ties go to the entry met first in palette order.
func Nearest(target colour.RGBA, p *Palette) (Match, bool) {
	var (
		best  Match
		found bool
	)
	for e := range p.All() {
		c, ok := colour.Parse(e.Value)
		if !ok {
			continue
		}
		d := colour.Distance2(target, c)
		if !found || d < best.Distance {
			best = Match{Entry: e, Distance: d}
			found = true
		}
	}
	return best, found
}

// Rank returns the parseable entries sorted by ascending distance to target.
// Entries at equal distance keep their input order.
func Rank(target colour.RGBA, entries iter.Seq[Entry]) []Match {
	var out []Match
	for e := range entries {
		c, ok := colour.Parse(e.Value)
		if !ok {
			continue
		}
		out = append(out, Match{Entry: e, Distance: colour.Distance2(target, c)})
	}
	slices.SortStableFunc(out, func(a, b Match) int {
		return a.Distance - b.Distance
	})
	return out
}
