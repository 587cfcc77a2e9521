package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/gistview"
	"github.com/fwojciec/gistview/web"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrNoURL is returned when a command needs at least one gist URL.
var ErrNoURL = errors.New("no gist URL: provide a GitHub Gist URL")

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// App encapsulates the application logic for testing.
type App struct {
	Out     io.Writer
	Loader  *gistview.Loader
	Lister  gistview.Lister
	Viewer  gistview.Viewer
	Workers int
	Logger  *zap.Logger
}

// View opens the interactive viewer. An empty URL starts in the idle state.
func (a *App) View(ctx context.Context, gistURL string) error {
	return a.Viewer.View(ctx, gistURL)
}

// Render loads every gist concurrently and writes them in argument order.
func (a *App) Render(ctx context.Context, urls []string, format string) error {
	if len(urls) == 0 {
		return ErrNoURL
	}
	if format != FormatText && format != FormatHTML {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	results := make([][]gistview.File, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.Workers, 1))
	for i, u := range urls {
		g.Go(func() error {
			files, err := a.load(gctx, u)
			if err != nil {
				return fmt.Errorf("%s: %w", u, err)
			}
			results[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, files := range results {
		var err error
		if format == FormatHTML {
			err = web.WriteHTML(a.Out, urls[i], files)
		} else {
			err = writeText(a.Out, files)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Inspect writes the prepared files of one gist as JSON or YAML.
func (a *App) Inspect(ctx context.Context, gistURL, format string) error {
	files, err := a.load(ctx, gistURL)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	case FormatYAML:
		enc := yaml.NewEncoder(a.Out)
		enc.SetIndent(2)
		if err := enc.Encode(files); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// List writes a table of a user's gists matching query.
func (a *App) List(ctx context.Context, user, query string) error {
	gists, err := a.Lister.List(ctx, user)
	if err != nil {
		return gistview.Classify(err)
	}
	gists = gistview.FilterGists(gists, query)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(a.Out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"ID", "Description", "Files", "Updated"})
	for _, g := range gists {
		updated := ""
		if !g.UpdatedAt.IsZero() {
			updated = humanize.Time(g.UpdatedAt)
		}
		tbl.AppendRow(table.Row{g.ID, g.Description, strings.Join(g.Filenames, ", "), updated})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d gists", len(gists))})
	tbl.Render()
	return nil
}

// Serve runs the web server on addr until ctx is done.
func (a *App) Serve(ctx context.Context, addr string) error {
	return web.NewServer(a.Loader, web.WithLogger(a.Logger)).ListenAndServe(ctx, addr)
}

// load treats an empty result as an error: outside the viewer there is no
// idle state to show.
func (a *App) load(ctx context.Context, gistURL string) ([]gistview.File, error) {
	if strings.TrimSpace(gistURL) == "" {
		return nil, ErrNoURL
	}
	a.Logger.Debug("loading gist", zap.String("url", gistURL))
	return a.Loader.Load(ctx, gistURL)
}

// writeText writes files as plain numbered listings. Import blocks are
// shown expanded.
func writeText(w io.Writer, files []gistview.File) error {
	var sb strings.Builder
	for i, f := range files {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "── %s [%s] ──\n", f.Filename, f.Language)

		width := len(fmt.Sprint(len(f.RawLines)))
		for _, row := range gistview.Layout(f, gistview.CollapseState{}) {
			switch row.Kind {
			case gistview.RowBlockHeader:
				fmt.Fprintf(&sb, "%*s %s\n", width, "", gistview.ExpandedHeader)
			case gistview.RowLine, gistview.RowImportLine:
				fmt.Fprintf(&sb, "%*d %s\n", width, row.Number(), gistview.DisplayText(f.RawLines[row.Line]))
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
