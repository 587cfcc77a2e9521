// Package highlight provides the built-in regular-expression highlighter.
package highlight

import (
	"regexp"
	"slices"

	"github.com/fwojciec/gistview"
)

// Compile-time interface verification.
var _ gistview.Highlighter = (*Highlighter)(nil)

// pattern is a token class matched against the escaped line.
// group selects the submatch used as the token span; 0 is the whole match.
type pattern struct {
	tokenType gistview.TokenType
	re        *regexp.Regexp
	group     int
}

// keywords is the union of several languages' reserved words. It is applied
// to every file regardless of its language.
const keywords = `const|let|var|function|class|if|else|for|while|return|import|export|from|async|await|try|catch|new|this|super|extends|implements|interface|type|enum|public|private|protected|static|void|int|string|boolean|true|false|null|undefined|def|self|print|lambda|pass|break|continue|yield|with|as|in|is|not|and|or|package|struct|trait|impl|fn|mut|ref|use|crate|mod|pub|match|loop|unsafe|where|val|var|fun|object|companion|data|sealed|inner|open|override|abstract|final|lateinit|by|delegate|get|set|field|property|receiver|constructor|init|throws|typealias|suspend|inline|noinline|crossinline|reified|external|annotation|expect|actual`

var patterns = []pattern{
	{
		tokenType: gistview.TokenComment,
		re:        regexp.MustCompile(`//[^\r\n]*|/\*[\s\S]*?\*/|#[^\r\n]*|<!--[\s\S]*?-->`),
	},
	{
		// One alternative per quote character; each allows escaped quotes.
		tokenType: gistview.TokenString,
		re:        regexp.MustCompile(`"(?:[^\\]|\\.)*?"|'(?:[^\\]|\\.)*?'|` + "`" + `(?:[^\\]|\\.)*?` + "`"),
	},
	{
		tokenType: gistview.TokenKeyword,
		re:        regexp.MustCompile(`\b(?:` + keywords + `)\b`),
	},
	{
		tokenType: gistview.TokenNumber,
		re:        regexp.MustCompile(`\b(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?\b`),
	},
	{
		// The identifier and any spaces before "(" form the token; the
		// parenthesis itself is not part of it.
		tokenType: gistview.TokenFunction,
		re:        regexp.MustCompile(`\b([a-zA-Z_$][\w$]*\s*)\(`),
		group:     1,
	},
}

// Highlighter marks comments, strings, numbers, keywords and function names
// with language-agnostic regular expressions.
type Highlighter struct{}

// NewHighlighter creates a new built-in highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Highlight escapes line and wraps every accepted token in a span.
// The language is not consulted.
func (h *Highlighter) Highlight(line, _ string) string {
	escaped := gistview.EscapeHTML(line)
	return gistview.Splice(escaped, Tokenize(escaped))
}

// Tokenize returns the accepted tokens of an escaped line, sorted by offset.
//
// Candidates from every pattern are ordered by descending priority and then
// ascending start; a candidate is accepted only if it overlaps no token
// accepted before it.
func Tokenize(escaped string) []gistview.Token {
	var candidates []gistview.Token
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(escaped, -1) {
			start, end := m[2*p.group], m[2*p.group+1]
			if start < 0 || start == end {
				continue
			}
			candidates = append(candidates, gistview.Token{Start: start, End: end, Type: p.tokenType})
		}
	}

	slices.SortStableFunc(candidates, func(a, b gistview.Token) int {
		if pa, pb := a.Type.Priority(), b.Type.Priority(); pa != pb {
			return pb - pa
		}
		return a.Start - b.Start
	})

	var accepted []gistview.Token
	for _, c := range candidates {
		if !overlapsAny(c, accepted) {
			accepted = append(accepted, c)
		}
	}

	slices.SortFunc(accepted, func(a, b gistview.Token) int {
		return a.Start - b.Start
	})
	return accepted
}

func overlapsAny(tok gistview.Token, accepted []gistview.Token) bool {
	for _, a := range accepted {
		if tok.Overlaps(a) {
			return true
		}
	}
	return false
}
