// Command gistview loads GitHub Gists and shows them with syntax
// highlighting and collapsible import blocks.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/gistview"
	"github.com/fwojciec/gistview/bubbletea"
	"github.com/fwojciec/gistview/chroma"
	"github.com/fwojciec/gistview/clipboard"
	"github.com/fwojciec/gistview/config"
	"github.com/fwojciec/gistview/github"
	"github.com/fwojciec/gistview/highlight"
	"github.com/fwojciec/gistview/lipgloss"
	"github.com/fwojciec/gistview/lru"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The App is assembled from config in
// PersistentPreRunE, so subcommands only run against a fully wired App.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		configPath string
		verbose    bool
		cfg        *config.Config
		app        *App
	)

	root := &cobra.Command{
		Use:           "gistview",
		Short:         "View GitHub Gists with syntax highlighting and collapsible imports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			// The viewer owns the terminal, so it only logs to a file.
			interactive := cmd.Name() == "view"
			logger, err := newLogger(cfg.Log, verbose, interactive)
			if err != nil {
				return err
			}
			app, err = newApp(cfg, logger, out)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app != nil {
				_ = app.Logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .gistview.yaml in CWD or $HOME)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "view [gist-url]",
			Short: "Open a gist in the terminal viewer",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var gistURL string
				if len(args) > 0 {
					gistURL = args[0]
				}
				return app.View(cmd.Context(), gistURL)
			},
		},
		newRenderCmd(&app),
		newInspectCmd(&app),
		newListCmd(&app),
		newServeCmd(&app, &cfg),
	)
	return root
}

func newServeCmd(app **App, cfg **config.Config) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve gists over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = (*cfg).Server.Addr
			}
			return (*app).Serve(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	return cmd
}

func newRenderCmd(app **App) *cobra.Command {
	var (
		format  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "render <gist-url>...",
		Short: "Print one or more gists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers > 0 {
				(*app).Workers = workers
			}
			return (*app).Render(cmd.Context(), args, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format (text|html)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent fetches (default render.workers)")
	return cmd
}

func newInspectCmd(app **App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "inspect <gist-url>",
		Short: "Dump the prepared files of a gist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*app).Inspect(cmd.Context(), args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", FormatJSON, "output format (json|yaml)")
	return cmd
}

func newListCmd(app **App) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list <user>",
		Short: "List a user's public gists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*app).List(cmd.Context(), args[0], filter)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "only show gists whose description or filenames match")
	return cmd
}

// newLogger builds a production zap logger. Interactive sessions get a no-op
// logger unless a log file is configured.
func newLogger(cfg config.LogConfig, verbose, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zcfg.OutputPaths = []string{cfg.File}
		zcfg.ErrorOutputPaths = []string{cfg.File}
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// newApp wires the GitHub client, cache, highlighter and viewer from cfg.
func newApp(cfg *config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	client, err := github.NewClient(
		github.WithBaseURL(cfg.API.BaseURL),
		github.WithHTTPClient(&http.Client{Timeout: cfg.HTTP.Timeout}),
		github.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	var fetcher gistview.Fetcher = client
	if cfg.Cache.Size > 0 {
		fetcher, err = lru.NewFetcher(client, cfg.Cache.Size)
		if err != nil {
			return nil, err
		}
	}

	var highlighter gistview.Highlighter = highlight.NewHighlighter()
	if cfg.Highlighter == config.HighlighterChroma {
		highlighter = chroma.NewHighlighter()
	}
	loader := gistview.NewLoader(fetcher, highlighter)

	theme, _ := lipgloss.ThemeByName(cfg.Theme)
	viewerOpts := []bubbletea.ModelOption{
		bubbletea.WithLoader(loader),
		bubbletea.WithTheme(theme),
	}
	if cb := clipboard.NewSystem(); cb.Available() {
		viewerOpts = append(viewerOpts, bubbletea.WithClipboard(cb))
	}

	return &App{
		Out:     out,
		Loader:  loader,
		Lister:  client,
		Viewer:  bubbletea.NewViewer(viewerOpts...),
		Workers: cfg.Render.Workers,
		Logger:  logger,
	}, nil
}
