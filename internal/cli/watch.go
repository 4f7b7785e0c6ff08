package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tailtint/internal/themecss"
)

func newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-index a file whenever the theme stylesheets change",
		Long: `Index a document, then watch the project stylesheets and print a fresh
index each time theme variables change. Runs until interrupted.

Examples:
  tailtint watch src/App.vue
  tailtint watch --css src/theme.css index.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			path := args[0]
			out := cmd.OutOrStdout()

			reindex := func() {
				text, err := readInput(cmd, path)
				if err != nil {
					a.logger.Error("failed to read document", "path", path, "error", err)
					return
				}
				writeIndexTable(out, text, a.indexer.Index(text), false)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := themecss.NewWatcher(themecss.WatchDirs(a.files.Files(), a.cfg.Root), a, themecss.WatchConfig{
				Debounce: debounce,
				Logger:   a.logger,
				OnChange: func(changed string) {
					fmt.Fprintf(out, "\n%s changed\n", changed)
					reindex()
				},
			})
			if err != nil {
				return err
			}
			defer w.Close()

			reindex()

			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", themecss.DefaultDebounce, "delay before reacting to stylesheet changes")

	return cmd
}
