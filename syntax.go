package gistview

import "strings"

// TokenType is a highlighting category.
type TokenType string

// Token types, named after the CSS class suffix used in markup.
const (
	TokenComment  TokenType = "comment"
	TokenString   TokenType = "string"
	TokenNumber   TokenType = "number"
	TokenKeyword  TokenType = "keyword"
	TokenFunction TokenType = "function"
)

// Priority returns the precedence used to resolve overlapping tokens.
// Higher wins.
func (t TokenType) Priority() int {
	switch t {
	case TokenComment:
		return 5
	case TokenString:
		return 4
	case TokenNumber:
		return 3
	case TokenKeyword:
		return 2
	case TokenFunction:
		return 1
	default:
		return 0
	}
}

// Token is a typed span of an escaped line, as byte offsets [Start, End).
type Token struct {
	Start int
	End   int
	Type  TokenType
}

// Overlaps reports whether two tokens share at least one byte.
func (t Token) Overlaps(o Token) bool {
	return t.Start < o.End && o.Start < t.End
}

// Highlighter converts a single source line into HTML-safe markup.
type Highlighter interface {
	// Highlight escapes line and wraps recognized tokens in
	// <span class="token-TYPE"> elements.
	Highlight(line, language string) string
}

// Segment is a run of unescaped text carrying an optional token type.
type Segment struct {
	Text string
	Type TokenType // Empty for plain text
}

var (
	escaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	unescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">")
)

// EscapeHTML escapes &, < and >. Quotes are left alone so token offsets
// computed on the escaped line line up with quoted string literals.
func EscapeHTML(s string) string {
	return escaper.Replace(s)
}

// UnescapeHTML reverses EscapeHTML.
func UnescapeHTML(s string) string {
	return unescaper.Replace(s)
}

const (
	spanOpenPrefix = `<span class="token-`
	spanOpenSuffix = `">`
	spanClose      = `</span>`
)

// Span wraps already-escaped text in a token span.
func Span(t TokenType, escaped string) string {
	return spanOpenPrefix + string(t) + spanOpenSuffix + escaped + spanClose
}

// Splice interleaves plain and wrapped segments of an escaped line.
// Tokens must be sorted by Start and must not overlap.
func Splice(escaped string, tokens []Token) string {
	var sb strings.Builder
	last := 0
	for _, tok := range tokens {
		sb.WriteString(escaped[last:tok.Start])
		sb.WriteString(Span(tok.Type, escaped[tok.Start:tok.End]))
		last = tok.End
	}
	sb.WriteString(escaped[last:])
	return sb.String()
}

// ParseMarkup splits highlighted markup back into unescaped segments.
// Anything that is not a token span is treated as plain text.
func ParseMarkup(markup string) []Segment {
	var segments []Segment
	rest := markup
	for rest != "" {
		open := strings.Index(rest, spanOpenPrefix)
		if open < 0 {
			segments = append(segments, Segment{Text: UnescapeHTML(rest)})
			break
		}
		if open > 0 {
			segments = append(segments, Segment{Text: UnescapeHTML(rest[:open])})
		}
		rest = rest[open+len(spanOpenPrefix):]

		typeEnd := strings.Index(rest, spanOpenSuffix)
		if typeEnd < 0 {
			segments = append(segments, Segment{Text: UnescapeHTML(spanOpenPrefix + rest)})
			break
		}
		tokenType := TokenType(rest[:typeEnd])
		rest = rest[typeEnd+len(spanOpenSuffix):]

		end := strings.Index(rest, spanClose)
		if end < 0 {
			segments = append(segments, Segment{Text: UnescapeHTML(rest), Type: tokenType})
			break
		}
		if end > 0 {
			segments = append(segments, Segment{Text: UnescapeHTML(rest[:end]), Type: tokenType})
		}
		rest = rest[end+len(spanClose):]
	}
	return segments
}

// StripMarkup removes token spans and unescapes the result.
func StripMarkup(markup string) string {
	var sb strings.Builder
	for _, seg := range ParseMarkup(markup) {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// DisplayText prepares raw line text for a terminal. Carriage returns are
// dropped and other control characters except tab become U+FFFD.
func DisplayText(s string) string {
	if !strings.ContainsFunc(s, isControl) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\r':
			return -1
		case isControl(r):
			return '�'
		default:
			return r
		}
	}, s)
}

func isControl(r rune) bool {
	return (r < 0x20 && r != '\t') || r == 0x7f
}
