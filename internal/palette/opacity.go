package palette

import (
	"github.com/jmylchreest/tailtint/internal/colour"
)

// WithOpacity bakes an opacity percentage into a colour literal, rendering it
// as "rgba(R, G, B, alpha)" with 0-255 channels and alpha = percent/100.
// It reports false when the literal cannot be parsed.
func WithOpacity(literal string, percent int) (string, bool) {
	c, ok := colour.Parse(literal)
	if !ok {
		return "", false
	}
	percent = max(0, min(100, percent))
	c.A = float64(percent) / 100.0
	return c.String(), true
}
