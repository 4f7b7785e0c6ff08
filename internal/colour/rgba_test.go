package colour

import (
	"strings"
	"testing"
)

func TestRGBAString(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{FromRGB255(255, 0, 0, 0.5), "rgba(255, 0, 0, 0.5)"},
		{FromRGB255(168, 240, 168, 0.2), "rgba(168, 240, 168, 0.2)"},
		{Opaque(1, 1, 1), "rgba(255, 255, 255, 1)"},
		{FromRGB255(0, 0, 0, 0), "rgba(0, 0, 0, 0)"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestHexAlpha(t *testing.T) {
	if got := Opaque(1, 0, 0).HexAlpha(); got != "#ff0000" {
		t.Errorf("HexAlpha() = %s, want #ff0000", got)
	}
	if got := (RGBA{R: 1, G: 1, B: 1, A: 0.5}).HexAlpha(); got != "#ffffff80" {
		t.Errorf("HexAlpha() = %s, want #ffffff80", got)
	}
}

func TestOpacityPercent(t *testing.T) {
	tests := []struct {
		a    float64
		want int
	}{
		{1, 100},
		{0.5, 50},
		{0.204, 20},
		{0, 0},
		{1.5, 100},
	}
	for _, tt := range tests {
		if got := (RGBA{A: tt.a}).OpacityPercent(); got != tt.want {
			t.Errorf("OpacityPercent(%v) = %d, want %d", tt.a, got, tt.want)
		}
	}
}

func TestDistance2(t *testing.T) {
	red := Opaque(1, 0, 0)
	if got := Distance2(red, red); got != 0 {
		t.Errorf("Distance2(red, red) = %d, want 0", got)
	}
	if got := Distance2(red, FromRGB255(238, 0, 0, 1)); got != 17*17 {
		t.Errorf("Distance2() = %d, want %d", got, 17*17)
	}
	// Alpha does not contribute.
	if got := Distance2(red, FromRGB255(255, 0, 0, 0)); got != 0 {
		t.Errorf("Distance2() with alpha = %d, want 0", got)
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(Opaque(1, 1, 1)); got < 0.999 {
		t.Errorf("Luminance(white) = %v, want 1", got)
	}
	if got := Luminance(Opaque(0, 0, 0)); got != 0 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}
}

func TestPreviewContainsLabel(t *testing.T) {
	out := Preview(Opaque(1, 1, 1), "bg-white", 12)
	if out == "" {
		t.Fatal("Preview() returned empty string")
	}
	if !strings.Contains(out, "bg-white") {
		t.Errorf("Preview() = %q, want label included", out)
	}
}
