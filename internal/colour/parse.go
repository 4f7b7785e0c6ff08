package colour

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	hexRegex  = regexp.MustCompile(`^#([0-9a-fA-F]{3,8})$`)
	funcRegex = regexp.MustCompile(`^([a-zA-Z]+)\s*\((.*)\)$`)
)

// parser reports whether it recognised the literal and the colour it denotes.
type parser func(literal string) (RGBA, bool)

// parsers are tried in this order; the first to accept a literal wins.
var parsers = []parser{
	parseHex,
	parseRGB,
	parseHSL,
	parseOKLCH,
	parseOKLab,
}

// Parse converts a CSS colour literal to RGBA.
// Supported: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb()/rgba(), hsl()/hsla(),
// oklch() and oklab(). Anything else reports false.
func Parse(literal string) (RGBA, bool) {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return RGBA{}, false
	}

	for _, p := range parsers {
		if c, ok := p(literal); ok {
			return c, true
		}
	}
	return RGBA{}, false
}

// IsLiteral reports whether the value parses as a colour.
func IsLiteral(value string) bool {
	_, ok := Parse(value)
	return ok
}

// parseHex parses #rgb, #rgba, #rrggbb and #rrggbbaa.
func parseHex(literal string) (RGBA, bool) {
	m := hexRegex.FindStringSubmatch(literal)
	if m == nil {
		return RGBA{}, false
	}
	hex := m[1]

	// Expand shorthand format (RGB -> RRGGBB, RGBA -> RRGGBBAA).
	if len(hex) == 3 || len(hex) == 4 {
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	}
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, false
	}

	alpha := 1.0
	if len(hex) == 8 {
		alpha = float64(v&0xff) / 255.0
		v >>= 8
	}

	return FromRGB255(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff), alpha), true
}

// parseRGB parses rgb()/rgba() with comma or space separators.
func parseRGB(literal string) (RGBA, bool) {
	args, alpha, ok := splitFunc(literal, "rgb", "rgba")
	if !ok || len(args) != 3 {
		return RGBA{}, false
	}

	var ch [3]float64
	for i, arg := range args {
		if pct, isPct := strings.CutSuffix(arg, "%"); isPct {
			v, err := strconv.ParseFloat(pct, 64)
			if err != nil {
				return RGBA{}, false
			}
			ch[i] = clamp01(v / 100)
			continue
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return RGBA{}, false
		}
		ch[i] = clamp01(v / 255)
	}

	a, ok := parseAlpha(alpha)
	if !ok {
		return RGBA{}, false
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, true
}

// parseHSL parses hsl()/hsla(). Saturation and lightness may omit the
// percent sign; unitless values are still percentages.
func parseHSL(literal string) (RGBA, bool) {
	args, alpha, ok := splitFunc(literal, "hsl", "hsla")
	if !ok || len(args) != 3 {
		return RGBA{}, false
	}

	h, ok := parseHue(args[0])
	if !ok {
		return RGBA{}, false
	}
	s, ok := parsePercent(args[1])
	if !ok {
		return RGBA{}, false
	}
	l, ok := parsePercent(args[2])
	if !ok {
		return RGBA{}, false
	}
	a, ok := parseAlpha(alpha)
	if !ok {
		return RGBA{}, false
	}

	return HSLToRGBA(h, s, l, a), true
}

// parseOKLCH parses oklch(L C H [/ A]). L may be a fraction or a percentage.
func parseOKLCH(literal string) (RGBA, bool) {
	args, alpha, ok := splitFunc(literal, "oklch")
	if !ok || len(args) != 3 {
		return RGBA{}, false
	}

	l, ok := parseLightness(args[0])
	if !ok {
		return RGBA{}, false
	}
	c, ok := parseScaled(args[1], 0.4)
	if !ok {
		return RGBA{}, false
	}
	h, ok := parseHue(args[2])
	if !ok {
		return RGBA{}, false
	}
	a, ok := parseAlpha(alpha)
	if !ok {
		return RGBA{}, false
	}

	return OKLCHToRGBA(l, c, h, a), true
}

// parseOKLab parses oklab(L a b [/ A]).
func parseOKLab(literal string) (RGBA, bool) {
	args, alpha, ok := splitFunc(literal, "oklab")
	if !ok || len(args) != 3 {
		return RGBA{}, false
	}

	l, ok := parseLightness(args[0])
	if !ok {
		return RGBA{}, false
	}
	a, ok := parseScaled(args[1], 0.4)
	if !ok {
		return RGBA{}, false
	}
	b, ok := parseScaled(args[2], 0.4)
	if !ok {
		return RGBA{}, false
	}
	alphaVal, ok := parseAlpha(alpha)
	if !ok {
		return RGBA{}, false
	}

	return OKLabToRGBA(l, a, b, alphaVal), true
}

// splitFunc splits "name(a, b, c / d)" or "name(a b c / d)" into its
// channel arguments and the alpha argument (empty when absent). The legacy
// four-argument comma form is accepted with the fourth argument as alpha.
func splitFunc(literal string, names ...string) (args []string, alpha string, ok bool) {
	m := funcRegex.FindStringSubmatch(literal)
	if m == nil {
		return nil, "", false
	}

	name := strings.ToLower(m[1])
	matched := false
	for _, n := range names {
		if name == n {
			matched = true
			break
		}
	}
	if !matched {
		return nil, "", false
	}

	inner := m[2]
	if before, after, found := strings.Cut(inner, "/"); found {
		inner = before
		alpha = strings.TrimSpace(after)
		if alpha == "" {
			return nil, "", false
		}
	}

	args = strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(args) == 4 && alpha == "" {
		alpha = args[3]
		args = args[:3]
	}

	return args, alpha, true
}

// parseAlpha parses an optional alpha value ("0.5", "50%"). Empty means 1.
func parseAlpha(s string) (float64, bool) {
	if s == "" {
		return 1, true
	}
	if pct, isPct := strings.CutSuffix(s, "%"); isPct {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, false
		}
		return clamp01(v / 100), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clamp01(v), true
}

// parseHue parses a hue in degrees, with or without a "deg" suffix.
func parseHue(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.ToLower(s), "deg")
	if s == "none" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return normaliseHue(v), true
}

// parsePercent parses "50%" or "50" as 0.5.
func parsePercent(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return clamp01(v / 100.0), true
}

// parseLightness parses an OK lightness: a plain fraction or a percentage.
func parseLightness(s string) (float64, bool) {
	return parseScaled(s, 1)
}

// parseScaled parses a plain number, or a percentage of full.
func parseScaled(s string, full float64) (float64, bool) {
	if s == "none" {
		return 0, true
	}
	if pct, isPct := strings.CutSuffix(s, "%"); isPct {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, false
		}
		return v / 100 * full, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
