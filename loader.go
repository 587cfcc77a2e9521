package gistview

import (
	"context"
	"errors"
	"strings"
)

// Loader fetches a gist and prepares its files for display.
type Loader struct {
	Fetcher     Fetcher
	Highlighter Highlighter
}

// NewLoader creates a Loader.
func NewLoader(fetcher Fetcher, highlighter Highlighter) *Loader {
	return &Loader{Fetcher: fetcher, Highlighter: highlighter}
}

// Load resolves the gist ID from gistURL, fetches the gist once and builds
// its files. An empty URL is the idle state: no fetch, no files, no error.
// Failures are returned as *Error, except context cancellation.
func (l *Loader) Load(ctx context.Context, gistURL string) ([]File, error) {
	if strings.TrimSpace(gistURL) == "" {
		return nil, nil
	}

	id, err := ParseGistID(gistURL)
	if err != nil {
		return nil, err
	}

	if l.Fetcher == nil {
		return nil, &Error{Kind: ErrFetchFailed, Err: errors.New("no fetcher configured")}
	}
	gist, err := l.Fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, Classify(err)
	}

	files := BuildFiles(gist.Files, l.Highlighter)
	if len(files) == 0 {
		return nil, &Error{Kind: ErrEmptyGist}
	}
	return files, nil
}

// BuildFiles converts raw gist files into display files, preserving order.
// A nil highlighter leaves every line escaped but unmarked.
func BuildFiles(raw []RawFile, highlighter Highlighter) []File {
	files := make([]File, 0, len(raw))
	for _, rf := range raw {
		files = append(files, BuildFile(rf, highlighter))
	}
	return files
}

// BuildFile prepares a single raw file for display.
func BuildFile(rf RawFile, highlighter Highlighter) File {
	rawLines := strings.Split(rf.Content, "\n")
	language := DetectLanguage(rf.Filename)

	lines := make([]string, len(rawLines))
	for i, line := range rawLines {
		if highlighter == nil {
			lines[i] = EscapeHTML(line)
			continue
		}
		lines[i] = highlighter.Highlight(line, language)
	}

	return File{
		Filename:     rf.Filename,
		Language:     language,
		Content:      rf.Content,
		RawLines:     rawLines,
		Lines:        lines,
		ImportBlocks: DetectImportBlocks(rawLines, language),
	}
}
