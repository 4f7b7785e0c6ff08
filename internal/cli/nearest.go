package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tailtint/internal/palette"
)

func newNearestCmd() *cobra.Command {
	var (
		count     int
		themeOnly bool
		preview   bool
	)

	cmd := &cobra.Command{
		Use:   "nearest <colour>",
		Short: "Find the palette colours closest to a colour",
		Long: `Find the palette entries closest to a colour literal, measured as the
squared RGB distance. The merged palette includes theme colours, so project
colours are matched alongside the built-in Tailwind ones.

Examples:
  tailtint nearest '#ef4444'
  tailtint nearest 'oklch(0.637 0.237 25.331)' --count 5
  tailtint nearest 'rgb(14 129 14)' --theme-only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseColourArg(args[0])
			if err != nil {
				return err
			}

			a := newApp(cmd)
			p := a.store.Palette()

			entries := p.All()
			if themeOnly {
				entries = p.Theme()
			}
			matches := palette.Rank(target, entries)
			if len(matches) == 0 {
				return fmt.Errorf("palette has no parseable colours")
			}
			if count > 0 && len(matches) > count {
				matches = matches[:count]
			}

			out := cmd.OutOrStdout()
			preview = preview && isTerminal(out)

			headers := []string{"NAME", "VALUE", "DISTANCE", "SOURCE"}
			if preview {
				headers = append([]string{""}, headers...)
			}
			table := NewTable(headers...)
			for _, m := range matches {
				row := []string{m.Name(), m.Value, strconv.Itoa(m.Distance), entrySource(m.Entry)}
				if preview {
					row = append([]string{swatch(m.Value)}, row...)
				}
				table.AddRow(row...)
			}
			table.WriteTo(out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of matches to list (0 for all)")
	cmd.Flags().BoolVar(&themeOnly, "theme-only", false, "only match project theme colours")
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "show colour swatches when writing to a terminal")

	return cmd
}

func entrySource(e palette.Entry) string {
	if e.Theme {
		return "theme"
	}
	return "builtin"
}
