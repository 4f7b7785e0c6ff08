package palette

import (
	"testing"

	"github.com/jmylchreest/tailtint/internal/colour"
)

func testPalette() *Palette {
	p := New()
	p.Set("red", "500", "#ff0000", false)
	p.Set("red", "600", "#ee0000", false)
	p.Set("blue", "500", "#0000ff", false)
	return p
}

func TestNearest(t *testing.T) {
	m, ok := Nearest(colour.Opaque(1, 0, 0), testPalette())
	if !ok {
		t.Fatal("Nearest() found nothing")
	}
	if m.Family != "red" || m.Shade != "500" {
		t.Errorf("Nearest() = %s, want red-500", m.Name())
	}
	if m.Distance != 0 {
		t.Errorf("Distance = %d, want 0", m.Distance)
	}
}

func TestNearestTieBreak(t *testing.T) {
	p := New()
	p.Set("first", "500", "#100000", false)
	p.Set("second", "500", "#300000", false)

	// #200000 is equidistant from both; the first in palette order wins.
	m, ok := Nearest(colour.FromRGB255(0x20, 0, 0, 1), p)
	if !ok || m.Family != "first" {
		t.Errorf("Nearest() = %s, want first-500", m.Name())
	}
}

func TestNearestSkipsUnparseable(t *testing.T) {
	p := New()
	p.Set("transparent", DefaultShade, "transparent", false)
	if _, ok := Nearest(colour.Opaque(0, 0, 0), p); ok {
		t.Error("Nearest() should report no match for an unparseable palette")
	}
	if _, ok := Nearest(colour.Opaque(0, 0, 0), New()); ok {
		t.Error("Nearest() should report no match for an empty palette")
	}

	p.Set("black", DefaultShade, "#000", false)
	m, ok := Nearest(colour.Opaque(0.1, 0.1, 0.1), p)
	if !ok || m.Family != "black" {
		t.Errorf("Nearest() = %s, want black", m.Name())
	}
}

func TestNearestBuiltinWhite(t *testing.T) {
	m, ok := Nearest(colour.RGBA{R: 1, G: 1, B: 1, A: 0.5}, Builtin())
	if !ok || m.Name() != "white" {
		t.Errorf("Nearest(white) = %s, want white", m.Name())
	}
}

func TestRank(t *testing.T) {
	ranked := Rank(colour.FromRGB255(0, 0, 250, 1), testPalette().All())
	if len(ranked) != 3 {
		t.Fatalf("len(Rank()) = %d, want 3", len(ranked))
	}
	if ranked[0].Name() != "blue-500" {
		t.Errorf("Rank()[0] = %s, want blue-500", ranked[0].Name())
	}
	if ranked[1].Name() != "red-600" {
		t.Errorf("Rank()[1] = %s, want red-600", ranked[1].Name())
	}
}
