package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the project theme sources and variables",
		Long: `Show where theme data is read from and the colour variables it defines.

Stylesheets are searched at the configured path and the usual Tailwind
locations (src/index.css, src/styles/globals.css, app/globals.css and
similar). Variables from later files override earlier ones.

Examples:
  tailtint theme
  tailtint theme --root ./web --css src/theme.css`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Root: %s\n", a.cfg.Root)

			files := a.files.Files()
			if len(files) == 0 {
				fmt.Fprintln(out, "Stylesheets: none")
			} else {
				fmt.Fprintln(out, "Stylesheets:")
				for _, f := range files {
					fmt.Fprintf(out, "  %s\n", f)
				}
			}
			if a.cfg.ThemeURL != "" {
				fmt.Fprintf(out, "Remote theme: %s\n", a.cfg.ThemeURL)
			}
			if a.themeConfig != nil {
				fmt.Fprintf(out, "Tailwind config: %s\n", a.themeConfig.Path())
			}
			fmt.Fprintf(out, "Palette: %s\n\n", paletteSummary(a.store.Palette()))

			vars := a.store.Variables()
			if vars.Len() == 0 {
				fmt.Fprintln(out, "No theme variables found.")
				return nil
			}
			table := NewTable("NAME", "VALUE")
			for name, value := range vars.All() {
				table.AddRow(name, value)
			}
			table.WriteTo(out)
			return nil
		},
	}

	return cmd
}
