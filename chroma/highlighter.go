// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/gistview"
)

// Compile-time interface verification.
var _ gistview.Highlighter = (*Highlighter)(nil)

// Highlighter produces gistview markup from chroma lexer tokens, so keywords
// are recognized per language instead of from a shared word list.
type Highlighter struct{}

// NewHighlighter creates a new chroma-based highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Highlight tokenizes line with the lexer for language and wraps the
// recognized tokens in spans. Unknown languages fall back to plain text.
func (h *Highlighter) Highlight(line, language string) string {
	if line == "" {
		return ""
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	// The default options rewrite "\r" to "\n" before lexing.
	iterator, err := lexer.Tokenise(&chromalib.TokeniseOptions{State: "root"}, line)
	if err != nil {
		return gistview.EscapeHTML(line)
	}

	var sb strings.Builder
	remaining := line
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		// Emit the source bytes the token covers, never more than the
		// line holds.
		n := min(len(token.Value), len(remaining))
		if n == 0 {
			continue
		}
		text := remaining[:n]
		remaining = remaining[n:]

		escaped := gistview.EscapeHTML(text)
		if tt := TokenTypeOf(token.Type); tt != "" {
			sb.WriteString(gistview.Span(tt, escaped))
		} else {
			sb.WriteString(escaped)
		}
	}
	sb.WriteString(gistview.EscapeHTML(remaining))

	return sb.String()
}
