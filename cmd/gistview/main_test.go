package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/gistview"
	main "github.com/fwojciec/gistview/cmd/gistview"
	"github.com/fwojciec/gistview/highlight"
	"github.com/fwojciec/gistview/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var gists = map[string]*gistview.Gist{
	"one":  {ID: "one", Files: []gistview.RawFile{{Filename: "app.py", Content: "import os\nprint(1)"}}},
	"two":  {ID: "two", Files: []gistview.RawFile{{Filename: "notes.txt", Content: "hello"}}},
	"crlf": {ID: "crlf", Files: []gistview.RawFile{{Filename: "run.sh", Content: "echo hi\r\nexit 0\r\n"}}},
}

func newApp(out *bytes.Buffer) *main.App {
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, id string) (*gistview.Gist, error) {
			if g, ok := gists[id]; ok {
				return g, nil
			}
			return nil, gistview.StatusError(404, nil)
		},
	}
	return &main.App{
		Out:     out,
		Loader:  gistview.NewLoader(fetcher, highlight.NewHighlighter()),
		Workers: 2,
		Logger:  zap.NewNop(),
	}
}

func TestApp_View(t *testing.T) {
	t.Parallel()

	var viewed string
	app := newApp(&bytes.Buffer{})
	app.Viewer = &mock.Viewer{
		ViewFn: func(_ context.Context, gistURL string) error {
			viewed = gistURL
			return nil
		},
	}

	require.NoError(t, app.View(context.Background(), "https://gist.github.com/u/one"))
	assert.Equal(t, "https://gist.github.com/u/one", viewed)
}

func TestApp_Render(t *testing.T) {
	t.Parallel()

	t.Run("writes text listings in argument order", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		app := newApp(&out)

		err := app.Render(context.Background(), []string{
			"https://gist.github.com/u/two",
			"https://gist.github.com/u/one",
		}, main.FormatText)

		require.NoError(t, err)
		assert.Equal(t, "── notes.txt [plaintext] ──\n"+
			"1 hello\n"+
			"── app.py [python] ──\n"+
			"  Imports\n"+
			"1 import os\n"+
			"2 print(1)\n", out.String())
	})

	t.Run("drops carriage returns from text listings", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		app := newApp(&out)

		err := app.Render(context.Background(), []string{"https://gist.github.com/u/crlf"}, main.FormatText)

		require.NoError(t, err)
		assert.Equal(t, "── run.sh [bash] ──\n"+
			"1 echo hi\n"+
			"2 exit 0\n"+
			"3 \n", out.String())
	})

	t.Run("writes html documents", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		app := newApp(&out)

		err := app.Render(context.Background(), []string{"https://gist.github.com/u/one"}, main.FormatHTML)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "<!DOCTYPE html>")
		assert.Contains(t, out.String(), `<span class="filename">app.py</span>`)
	})

	t.Run("reports the failing URL", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		app := newApp(&out)

		err := app.Render(context.Background(), []string{
			"https://gist.github.com/u/one",
			"https://gist.github.com/u/missing",
		}, main.FormatText)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "https://gist.github.com/u/missing")
		assert.Equal(t, gistview.ErrNotFound, gistview.KindOf(err))
		assert.Empty(t, out.String())
	})

	t.Run("requires a URL", func(t *testing.T) {
		t.Parallel()

		err := newApp(&bytes.Buffer{}).Render(context.Background(), nil, main.FormatText)

		require.ErrorIs(t, err, main.ErrNoURL)
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		t.Parallel()

		err := newApp(&bytes.Buffer{}).Render(context.Background(), []string{"one"}, "pdf")

		require.ErrorIs(t, err, main.ErrUnknownFormat)
	})
}

func TestApp_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, newApp(&out).Inspect(context.Background(), "https://gist.github.com/u/one", main.FormatJSON))

		var files []gistview.File
		require.NoError(t, json.Unmarshal(out.Bytes(), &files))
		require.Len(t, files, 1)
		assert.Equal(t, "app.py", files[0].Filename)
		assert.Equal(t, []gistview.ImportBlock{{Start: 0, End: 0}}, files[0].ImportBlocks)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		require.NoError(t, newApp(&out).Inspect(context.Background(), "https://gist.github.com/u/one", main.FormatYAML))

		assert.Contains(t, out.String(), "filename: app.py")
		assert.Contains(t, out.String(), "language: python")
	})

	t.Run("empty URL", func(t *testing.T) {
		t.Parallel()

		err := newApp(&bytes.Buffer{}).Inspect(context.Background(), " ", main.FormatJSON)

		require.ErrorIs(t, err, main.ErrNoURL)
	})

	t.Run("load error", func(t *testing.T) {
		t.Parallel()

		err := newApp(&bytes.Buffer{}).Inspect(context.Background(), "https://gist.github.com/u/missing", main.FormatYAML)

		require.Error(t, err)
		assert.Equal(t, gistview.MsgNotFound, err.Error())
	})
}

func TestApp_List(t *testing.T) {
	t.Parallel()

	summaries := []gistview.GistSummary{
		{ID: "aaa111", Description: "Kotlin button", Filenames: []string{"Button.kt"}, UpdatedAt: time.Now().Add(-3 * time.Hour)},
		{ID: "bbb222", Description: "Shell helpers", Filenames: []string{"setup.sh"}},
	}

	t.Run("filters and tabulates", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		var user string
		app := newApp(&out)
		app.Lister = &mock.Lister{
			ListFn: func(_ context.Context, u string) ([]gistview.GistSummary, error) {
				user = u
				return summaries, nil
			},
		}

		require.NoError(t, app.List(context.Background(), "octocat", "button"))

		assert.Equal(t, "octocat", user)
		assert.Contains(t, out.String(), "aaa111")
		assert.Contains(t, out.String(), "Kotlin button")
		assert.Contains(t, out.String(), "Button.kt")
		assert.Contains(t, out.String(), "3 hours ago")
		assert.NotContains(t, out.String(), "bbb222")
	})

	t.Run("classifies errors", func(t *testing.T) {
		t.Parallel()

		app := newApp(&bytes.Buffer{})
		app.Lister = &mock.Lister{
			ListFn: func(context.Context, string) ([]gistview.GistSummary, error) {
				return nil, errors.New("boom")
			},
		}

		err := app.List(context.Background(), "octocat", "")

		require.Error(t, err)
		assert.Equal(t, gistview.ErrFetchFailed, gistview.KindOf(err))
	})
}
