package colour

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		wantHex string
		wantA   int
	}{
		{name: "six digit", literal: "#ff0000", wantHex: "#ff0000", wantA: 255},
		{name: "three digit", literal: "#abc", wantHex: "#aabbcc", wantA: 255},
		{name: "upper case", literal: "#FFF", wantHex: "#ffffff", wantA: 255},
		{name: "four digit", literal: "#0f08", wantHex: "#00ff00", wantA: 0x88},
		{name: "eight digit", literal: "#11223380", wantHex: "#112233", wantA: 0x80},
		{name: "surrounding space", literal: "  #000000 ", wantHex: "#000000", wantA: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Parse(tt.literal)
			if !ok {
				t.Fatalf("Parse(%q) failed", tt.literal)
			}
			if got := c.Hex(); got != tt.wantHex {
				t.Errorf("Hex() = %s, want %s", got, tt.wantHex)
			}
			if got := c.Alpha255(); got != tt.wantA {
				t.Errorf("Alpha255() = %d, want %d", got, tt.wantA)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#1a2b3c", "#fb2c36", "#0088ff"} {
		c, ok := Parse(hex)
		if !ok {
			t.Fatalf("Parse(%q) failed", hex)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("Hex(Parse(%q)) = %s", hex, got)
		}
	}

	c, _ := Parse("#1a2b3c80")
	if got := c.HexAlpha(); got != "#1a2b3c80" {
		t.Errorf("HexAlpha() = %s, want #1a2b3c80", got)
	}
}

func TestParseFunctions(t *testing.T) {
	tests := []struct {
		literal string
		wantHex string
		wantA   float64
	}{
		{"rgb(255,0,0)", "#ff0000", 1},
		{"rgb(255, 0, 0)", "#ff0000", 1},
		{"rgba(0,0,0,0.5)", "#000000", 0.5},
		{"rgb(0 128 255 / 50%)", "#0080ff", 0.5},
		{"rgb(100%, 0%, 0%)", "#ff0000", 1},
		{"hsl(0,100%,50%)", "#ff0000", 1},
		{"hsla(0,100%,50%,0.5)", "#ff0000", 0.5},
		{"hsl(120 70% 80%)", "#a8f0a8", 1},
		{"hsl(-120, 100%, 50%)", "#0000ff", 1},
		{"hsl(480deg 100% 50%)", "#00ff00", 1},
		{"hsl(0 0% 100%)", "#ffffff", 1},
		{"hsl(0, 0%, 100%, 25%)", "#ffffff", 0.25},
		{"hsl(0 100 50)", "#ff0000", 1},
		{"hsl(0 1 50)", "#817e7e", 1},
		{"hsl(0 2% 50%)", "#827d7d", 1},
		{"oklch(100% 0 0)", "#ffffff", 1},
		{"oklch(0 0 0)", "#000000", 1},
		{"oklch(63.7% 0.237 25.331 / 50%)", "#fb2c36", 0.5},
		{"oklch(0.637 0.237 25.331 / 0.25)", "#fb2c36", 0.25},
		{"OKLCH(98.5% 0 0)", "#fafafa", 1},
		{"oklab(1 0 0)", "#ffffff", 1},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			c, ok := Parse(tt.literal)
			if !ok {
				t.Fatalf("Parse(%q) failed", tt.literal)
			}
			if got := c.Hex(); got != tt.wantHex {
				t.Errorf("Hex() = %s, want %s", got, tt.wantHex)
			}
			if math.Abs(c.A-tt.wantA) > 1e-9 {
				t.Errorf("A = %v, want %v", c.A, tt.wantA)
			}
		})
	}
}

func TestParseOKLCHReferenceShade(t *testing.T) {
	c, ok := Parse("oklch(63.7% 0.237 25.331)")
	if !ok {
		t.Fatal("Parse() failed for red-500")
	}

	r, g, b := c.RGB255()
	want := [3]int{251, 44, 54}
	for i, got := range [3]int{r, g, b} {
		if d := got - want[i]; d < -2 || d > 2 {
			t.Errorf("channel %d = %d, want %d ±2", i, got, want[i])
		}
	}
}

func TestOKLCHMatchesColorful(t *testing.T) {
	tests := []struct {
		l, c, h float64
	}{
		{0.707, 0.022, 261.325},
		{0.971, 0.013, 17.38},
		{0.5, 0.1, 140},
		{0.3, 0.05, 300},
	}

	const tolerance = 2.0 / 255.0
	for _, tt := range tests {
		got := OKLCHToRGBA(tt.l, tt.c, tt.h, 1)
		ref := colorful.OkLch(tt.l, tt.c, tt.h).Clamped()

		if math.Abs(got.R-ref.R) > tolerance || math.Abs(got.G-ref.G) > tolerance || math.Abs(got.B-ref.B) > tolerance {
			t.Errorf("OKLCHToRGBA(%v, %v, %v) = %s, reference %s", tt.l, tt.c, tt.h, got.Hex(), ref.Hex())
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, literal := range []string{
		"",
		"red",
		"transparent",
		"#12",
		"#12345",
		"#gggggg",
		"rgb(1,2)",
		"rgb(a,b,c)",
		"hsl(0 100%)",
		"oklch(a b c)",
		"oklch(0.5 0.1 20 /)",
		"var(--primary)",
		"currentColor",
	} {
		if c, ok := Parse(literal); ok {
			t.Errorf("Parse(%q) = %v, want failure", literal, c)
		}
	}
}
