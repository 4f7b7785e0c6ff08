package colour

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

const defaultWidth = 8

// Preview returns a terminal swatch for a colour: a solid block of the given
// width with the text centred on it. The text colour is picked for contrast.
// Translucent colours are shown at full opacity.
func Preview(c RGBA, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if len(text) > width {
		text = text[:width]
	}

	fg := "#ffffff"
	if Luminance(c) > 0.5 {
		fg = "#000000"
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg)).
		Width(width).
		Align(lipgloss.Center)

	return style.Render(text)
}

// FormatWithPreview formats a colour with its swatch and hex code.
func FormatWithPreview(c RGBA, width int) string {
	return fmt.Sprintf("%s %s", Preview(c, "", width), c.HexAlpha())
}

// FormatWithLabel formats a colour with a swatch, a label and its hex code.
func FormatWithLabel(c RGBA, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Preview(c, "", width), label, c.HexAlpha())
}
