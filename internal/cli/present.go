package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresentCmd() *cobra.Command {
	var (
		prefix  string
		context string
	)

	cmd := &cobra.Command{
		Use:   "present <colour>",
		Short: "Suggest class names for a colour",
		Long: `Suggest utility classes that produce a colour, nearest first.

The class prefix is taken from --prefix, or read from the class in --context
(for example the class a colour picker is replacing). Without a prefix only
the hex value is printed.

Examples:
  tailtint present '#ef4444' --prefix bg-
  tailtint present 'rgba(255, 255, 255, 0.5)' --context hover:text-white
  tailtint present '#0e810e'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColourArg(args[0])
			if err != nil {
				return err
			}

			a := newApp(cmd)

			var candidates []string
			if prefix == "" {
				candidates = a.generator.PresentFor(c, context)
			} else {
				candidates = a.generator.Present(c, prefix)
			}

			out := cmd.OutOrStdout()
			for _, candidate := range candidates {
				fmt.Fprintln(out, candidate)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", `class prefix such as "hover:bg-"`)
	cmd.Flags().StringVar(&context, "context", "", "class text to take the prefix from")

	return cmd
}
