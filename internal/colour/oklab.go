package colour

import (
	"math"
)

// OKLCHToRGBA converts OKLCH to sRGB.
// l is lightness in [0, 1], c is chroma (typically 0-0.4), h is hue in degrees.
func OKLCHToRGBA(l, c, h, alpha float64) RGBA {
	// Rotate chroma and hue into the opponent a/b pair.
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	return OKLabToRGBA(l, a, b, alpha)
}

// OKLabToRGBA converts OKLab to sRGB, clamping each channel to [0, 1].
// Reference: https://bottosson.github.io/posts/oklab/.
func OKLabToRGBA(l, a, b, alpha float64) RGBA {
	// OKLab to non-linear LMS cone response.
	lVal := l + 0.3963377774*a + 0.2158037573*b
	mVal := l - 0.1055613458*a - 0.0638541728*b
	sVal := l - 0.0894841775*a - 1.2914855480*b

	lVal = lVal * lVal * lVal
	mVal = mVal * mVal * mVal
	sVal = sVal * sVal * sVal

	// LMS to linear-light sRGB (D65).
	r := +4.0767416621*lVal - 3.3077115913*mVal + 0.2309699292*sVal
	g := -1.2684380046*lVal + 2.6097574011*mVal - 0.3413193965*sVal
	bVal := -0.0041960863*lVal - 0.7034186147*mVal + 1.7076147010*sVal

	return RGBA{
		R: clamp01(linearToSRGB(r)),
		G: clamp01(linearToSRGB(g)),
		B: clamp01(linearToSRGB(bVal)),
		A: clamp01(alpha),
	}
}

// linearToSRGB applies the sRGB transfer function to a linear-light channel.
func linearToSRGB(c float64) float64 {
	if c < 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}
