package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tailtint/internal/classify"
	"github.com/jmylchreest/tailtint/internal/config"
	"github.com/jmylchreest/tailtint/internal/document"
	"github.com/jmylchreest/tailtint/internal/palette"
	"github.com/jmylchreest/tailtint/internal/present"
	"github.com/jmylchreest/tailtint/internal/resolve"
	"github.com/jmylchreest/tailtint/internal/themeconfig"
	"github.com/jmylchreest/tailtint/internal/themecss"
)

// app is the wired core for one command invocation.
type app struct {
	cfg    *config.Config
	logger hclog.Logger

	files       *themecss.FileSource
	store       *palette.Store
	themeConfig *themeconfig.Config

	classifier *classify.Classifier
	resolver   *resolve.Resolver
	indexer    *document.Indexer
	generator  *present.Generator
}

func newApp(cmd *cobra.Command) *app {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose, cmd.ErrOrStderr())

	cfg := config.Load(cmd.Flags(), logger)

	files := &themecss.FileSource{
		Root:       cfg.Root,
		CustomPath: cfg.CSSFilePath,
		Logger:     logger.Named("themecss"),
	}
	sources := themecss.MultiSource{files}
	if cfg.ThemeURL != "" {
		sources = append(sources, &themecss.RemoteSource{
			URL:    cfg.ThemeURL,
			Logger: logger.Named("themecss"),
		})
	}

	a := &app{
		cfg:        cfg,
		logger:     logger,
		files:      files,
		store:      palette.NewStore(sources, logger),
		classifier: classify.New(cfg.Utilities),
	}

	var themePaths resolve.ThemePathResolver
	configPath := cfg.ConfigFilePath()
	if configPath == "" {
		configPath = themeconfig.Discover(cfg.Root)
	}
	if configPath != "" {
		a.themeConfig = themeconfig.New(&themeconfig.FileProvider{Logger: logger}, configPath, logger)
		themePaths = a.themeConfig
	}

	a.resolver = resolve.New(a.classifier, a.store, themePaths)
	a.indexer = document.NewIndexer(a.resolver)
	a.generator = present.NewGenerator(a.classifier, a.store)
	return a
}

// Invalidate drops cached theme data after a stylesheet change.
func (a *app) Invalidate() {
	a.store.Invalidate()
	if a.themeConfig != nil {
		a.themeConfig.Invalidate()
	}
}

// newLogger returns a Debug logger on w when verbose, otherwise a silent one.
func newLogger(verbose bool, w io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tailtint",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tailtint",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
