package mock

import "github.com/fwojciec/gistview"

// Compile-time interface verification.
var _ gistview.Highlighter = (*Highlighter)(nil)

// Highlighter is a mock implementation of gistview.Highlighter.
type Highlighter struct {
	HighlightFn func(line, language string) string
}

func (h *Highlighter) Highlight(line, language string) string {
	return h.HighlightFn(line, language)
}
