package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/tailtint/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("NAME", "VALUE")
	table.AddRow("red")
	table.AddRow("blue", "#00f", "extra")

	want := [][]string{{"red", ""}, {"blue", "#00f"}}
	if diff := cmp.Diff(want, table.rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("NAME", "VALUE")
	table.AddRow("primary", "hsl(120 80% 28%)")
	table.AddRow("ink", "#111")

	want := "NAME     VALUE\n" +
		"-------  ----------------\n" +
		"primary  hsl(120 80% 28%)\n" +
		"ink      #111\n"
	if diff := cmp.Diff(want, table.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestTableStyledCells(t *testing.T) {
	swatch := colour.Preview(colour.Opaque(1, 0, 0), "", 4)
	table := NewTable("SWATCH", "NAME")
	table.AddRow(swatch, "red")
	table.AddRow("", "blue")

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.HasSuffix(lines[2], "  red") {
		t.Errorf("styled row = %q, want name after padding", lines[2])
	}
	if lines[3] != "        blue" {
		t.Errorf("plain row = %q, want %q", lines[3], "        blue")
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 2, "abcd"},
		{"", 3, "   "},
	}
	for _, tt := range tests {
		if got := padRight(tt.in, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
