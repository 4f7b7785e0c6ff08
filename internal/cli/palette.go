package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tailtint/internal/palette"
)

func newPaletteCmd() *cobra.Command {
	var (
		themeOnly bool
		family    string
		preview   bool
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the merged colour palette",
		Long: `List the colour palette used for resolution: the built-in Tailwind colours
with project theme colours merged over them.

Examples:
  tailtint palette
  tailtint palette --theme-only
  tailtint palette --family red --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			p := a.store.Palette()

			if family != "" && !p.HasFamily(family) {
				return fmt.Errorf("unknown colour family %q", family)
			}

			entries := p.All()
			if themeOnly {
				entries = p.Theme()
			}

			out := cmd.OutOrStdout()
			preview = preview && isTerminal(out)

			headers := []string{"NAME", "VALUE", "SOURCE"}
			if preview {
				headers = append([]string{""}, headers...)
			}
			table := NewTable(headers...)
			for e := range entries {
				if family != "" && e.Family != family {
					continue
				}
				row := []string{e.Name(), e.Value, entrySource(e)}
				if preview {
					row = append([]string{swatch(e.Value)}, row...)
				}
				table.AddRow(row...)
			}

			if table.Len() == 0 {
				fmt.Fprintln(out, "No colours found.")
				return nil
			}
			table.WriteTo(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&themeOnly, "theme-only", false, "only list project theme colours")
	cmd.Flags().StringVar(&family, "family", "", "only list one colour family")
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "show colour swatches when writing to a terminal")

	return cmd
}

// paletteSummary describes a palette in one line.
func paletteSummary(p *palette.Palette) string {
	theme := 0
	for range p.Theme() {
		theme++
	}
	return fmt.Sprintf("%d colours in %d families (%d from theme)", p.Len(), len(p.Families()), theme)
}
