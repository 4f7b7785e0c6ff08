// Package colour converts CSS colour literals to a normalised RGBA value and back.
package colour

import (
	"fmt"
	"math"
	"strconv"
)

// RGBA is a colour with floating point channels in [0, 1].
// All parsing funnels through it; rendering happens from it.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Opaque returns a fully opaque colour from [0, 1] channels.
func Opaque(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromRGB255 builds a colour from 0-255 channels and a [0, 1] alpha.
func FromRGB255(r, g, b int, a float64) RGBA {
	return RGBA{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: a,
	}
}

// RGB255 returns the red, green and blue channels rounded to 0-255.
func (c RGBA) RGB255() (r, g, b int) {
	return channel255(c.R), channel255(c.G), channel255(c.B)
}

// Alpha255 returns the alpha channel rounded to 0-255.
func (c RGBA) Alpha255() int {
	return channel255(c.A)
}

// Hex returns the colour as a lowercase "#rrggbb" string. Alpha is dropped.
func (c RGBA) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HexAlpha returns "#rrggbbaa" when the colour is translucent, otherwise Hex().
func (c RGBA) HexAlpha() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), c.Alpha255())
}

// String returns the colour as "rgba(r, g, b, a)" with 0-255 channels.
func (c RGBA) String() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, FormatAlpha(c.A))
}

// Translucent reports whether the alpha channel is below 1.
func (c RGBA) Translucent() bool {
	return c.A < 1
}

// OpacityPercent returns the alpha channel as a rounded percentage.
func (c RGBA) OpacityPercent() int {
	return int(math.Round(clamp01(c.A) * 100))
}

// FormatAlpha renders an alpha value the way CSS authors write it (0.5, 1, 0).
func FormatAlpha(a float64) string {
	return strconv.FormatFloat(clamp01(a), 'f', -1, 64)
}

// Distance2 returns the squared Euclidean distance between two colours over
// their 0-255 scaled red, green and blue channels. Alpha is ignored.
func Distance2(a, b RGBA) int {
	ar, ag, ab := a.RGB255()
	br, bg, bb := b.RGB255()
	dr, dg, db := ar-br, ag-bg, ab-bb
	return dr*dr + dg*dg + db*db
}

// channel255 scales a [0, 1] channel to the nearest integer in [0, 255].
func channel255(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

// clamp01 restricts a value to [0, 1].
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
