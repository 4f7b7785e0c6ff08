package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tailtint/internal/colour"
	"github.com/jmylchreest/tailtint/internal/security"
	"github.com/jmylchreest/tailtint/internal/themecss"
)

// readInput reads a document from path, or from stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(security.NewLimitedReader(r, themecss.MaxFileSize))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// lineCol returns the 1-based line and column of a byte offset in text.
// Columns count runes.
func lineCol(text string, offset int) (line, col int) {
	offset = min(offset, len(text))
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return line, utf8.RuneCountInString(before) + 1
}

// parseColourArg parses a colour given on the command line.
func parseColourArg(arg string) (colour.RGBA, error) {
	c, ok := colour.Parse(strings.TrimSpace(arg))
	if !ok {
		return colour.RGBA{}, fmt.Errorf("not a colour literal: %q", arg)
	}
	return c, nil
}

// swatch returns a preview block for literal, or "" when it does not parse.
func swatch(literal string) string {
	c, ok := colour.Parse(literal)
	if !ok {
		return ""
	}
	return colour.Preview(c, "", 4)
}
