package present

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/tailtint/internal/classify"
	"github.com/jmylchreest/tailtint/internal/colour"
	"github.com/jmylchreest/tailtint/internal/palette"
)

func newTestGenerator() *Generator {
	store := palette.NewStore(palette.ThemeSourceFunc(func() *palette.Variables {
		vars := palette.NewVariables()
		vars.Set("primary", "120 80% 28%")
		vars.Set("paper", "#fefefe")
		vars.Set("ink", "#111")
		return vars
	}), nil)
	return NewGenerator(classify.New(nil), store)
}

func TestPresent(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name   string
		colour colour.RGBA
		prefix string
		want   []string
	}{
		{
			name:   "translucent white",
			colour: colour.RGBA{R: 1, G: 1, B: 1, A: 0.5},
			prefix: "bg-",
			want:   []string{"bg-white/50", "bg-paper/50", "bg-primary/50", "bg-ink/50", "bg-[#ffffff]/50"},
		},
		{
			name:   "theme colour is nearest",
			colour: colour.FromRGB255(17, 17, 17, 1),
			prefix: "hover:text-",
			want:   []string{"hover:text-ink", "hover:text-primary", "hover:text-paper", "hover:text-[#111111]"},
		},
		{
			name:   "no prefix opaque",
			colour: colour.FromRGB255(18, 52, 86, 1),
			want:   []string{"#123456"},
		},
		{
			name:   "no prefix translucent",
			colour: colour.FromRGB255(18, 52, 86, 0.5),
			want:   []string{"#12345680"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Present(tt.colour, tt.prefix)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Present() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPresentBuiltinOnly(t *testing.T) {
	g := NewGenerator(nil, nil)
	red500, _ := colour.Parse("oklch(63.7% 0.237 25.331)")

	got := g.Present(red500, "bg-")
	want := []string{"bg-red-500", "bg-[" + red500.Hex() + "]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Present() mismatch (-want +got):\n%s", diff)
	}
}

func TestPresentFor(t *testing.T) {
	g := NewGenerator(nil, nil)
	black := colour.FromRGB255(0, 0, 0, 1)

	tests := map[string]string{
		"dark:bg-red-500": "dark:bg-black",
		"ring-offset-sky": "ring-offset-black",
	}
	for text, want := range tests {
		got := g.PresentFor(black, text)
		if len(got) == 0 || got[0] != want {
			t.Errorf("PresentFor(%q) = %v, want first %q", text, got, want)
		}
	}

	if got := g.PresentFor(black, "p-4"); !cmp.Equal(got, []string{"#000000"}) {
		t.Errorf("PresentFor(p-4) = %v", got)
	}
}
