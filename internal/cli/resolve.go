package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tailtint/internal/colour"
)

func newResolveCmd() *cobra.Command {
	var (
		apply   bool
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <class>...",
		Short: "Resolve utility classes to colour values",
		Long: `Resolve one or more Tailwind utility classes to the colour literal they
produce. Variant prefixes, opacity modifiers and arbitrary values are
supported.

With --apply the arguments are treated as the body of one @apply directive
and the single colour it produces is printed.

Examples:
  tailtint resolve bg-red-500 hover:text-primary/50
  tailtint resolve 'bg-[#ff0000]' 'text-[var(--brand)]'
  tailtint resolve --apply p-4 bg-primary rounded`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			out := cmd.OutOrStdout()
			preview = preview && isTerminal(out)

			if apply {
				body := strings.Join(args, " ")
				literal, ok := a.resolver.ResolveApply(body)
				if !ok {
					return fmt.Errorf("no colour in @apply %s", body)
				}
				fmt.Fprintln(out, literal)
				return nil
			}

			headers := []string{"CLASS", "LITERAL", "HEX"}
			if preview {
				headers = append([]string{""}, headers...)
			}
			table := NewTable(headers...)

			unresolved := 0
			for _, class := range args {
				literal, ok := a.resolver.Resolve(class)
				if !ok {
					unresolved++
					a.logger.Debug("class did not resolve", "class", class)
					literal = "-"
				}
				hex := "-"
				if c, ok := colour.Parse(literal); ok {
					hex = c.HexAlpha()
				}
				row := []string{class, literal, hex}
				if preview {
					row = append([]string{swatch(literal)}, row...)
				}
				table.AddRow(row...)
			}
			table.WriteTo(out)

			if unresolved == len(args) {
				return fmt.Errorf("no class resolved to a colour")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "treat the arguments as one @apply body")
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "show colour swatches when writing to a terminal")

	return cmd
}
