// Package cli provides the command-line interface for tailtint.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tailtint/internal/config"
	"github.com/jmylchreest/tailtint/internal/version"
)

// NewRootCmd builds the tailtint command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tailtint",
		Short: "Find and resolve Tailwind colours in source files",
		Long: `tailtint finds the colours used by Tailwind utility classes in markup,
stylesheets and component code, and resolves each one to a concrete value.

Colours come from the built-in Tailwind palette, project theme variables in
stylesheets (@theme, :root and .dark blocks), arbitrary values such as
bg-[#ff0000], var() references and theme() lookups in tailwind.config.js.
It also works in reverse, suggesting class names for a given colour.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newIndexCmd(),
		newResolveCmd(),
		newNearestCmd(),
		newPresentCmd(),
		newPaletteCmd(),
		newThemeCmd(),
		newWatchCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
