package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tailtint/internal/document"
)

// indexEntry is one row of index output.
type indexEntry struct {
	document.ColourSpan
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Hex    string `json:"hex"`
}

func newIndexCmd() *cobra.Command {
	var (
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "index <file|->",
		Short: "List the colours found in a file",
		Long: `List every colour occurrence in a document with its location and
resolved value.

Utility classes, @apply directives, ring colour declarations, class
attributes and CSS custom properties are recognised. Occurrences that do
not resolve to a colour are omitted.

Examples:
  tailtint index src/App.vue
  tailtint index --format json index.html
  cat page.html | tailtint index -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)

			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			spans := a.indexer.Index(text)
			a.logger.Debug("indexed document", "path", args[0], "colours", len(spans))

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeIndexJSON(out, text, spans)
			case "text":
				writeIndexTable(out, text, spans, preview && isTerminal(out))
				return nil
			default:
				return fmt.Errorf("unknown format %q (expected text or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "show colour swatches when writing to a terminal")

	return cmd
}

func indexEntries(text string, spans []document.ColourSpan) []indexEntry {
	entries := make([]indexEntry, 0, len(spans))
	for _, s := range spans {
		line, col := lineCol(text, s.Start)
		entries = append(entries, indexEntry{
			ColourSpan: s,
			Line:       line,
			Column:     col,
			Hex:        s.Colour.HexAlpha(),
		})
	}
	return entries
}

func writeIndexJSON(w io.Writer, text string, spans []document.ColourSpan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(indexEntries(text, spans)); err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	return nil
}

func writeIndexTable(w io.Writer, text string, spans []document.ColourSpan, preview bool) {
	if len(spans) == 0 {
		fmt.Fprintln(w, "No colours found.")
		return
	}

	headers := []string{"LOCATION", "KIND", "TEXT", "LITERAL", "HEX"}
	if preview {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers...)

	for _, e := range indexEntries(text, spans) {
		row := []string{
			strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Column),
			e.Kind.String(),
			oneLine(e.Text),
			e.Literal,
			e.Hex,
		}
		if preview {
			row = append([]string{swatch(e.Literal)}, row...)
		}
		table.AddRow(row...)
	}
	table.WriteTo(w)
}

// oneLine collapses whitespace runs so multi-line spans fit in one row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
