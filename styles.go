package gistview

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a gist view.
type Styles struct {
	FileHeader     ColorPair // Filename row above each file
	LanguageBadge  ColorPair // Detected language next to the filename
	LineNumber     ColorPair // Line numbers in the gutter
	Code           ColorPair // Plain code lines
	ImportLine     ColorPair // Code lines inside an expanded import block
	BlockCollapsed ColorPair // "N imports collapsed" summary rows
	BlockHeader    ColorPair // "Imports" header of an expanded block
	Cursor         ColorPair // The focused file header or import block
	Copied         ColorPair // "Copied!" indicator
	Error          ColorPair // Error messages
	StatusBar      ColorPair // Bottom status bar
}

// Color is a hex color string (e.g., "#ff0000").
type Color string

// Palette holds the semantic colors of a theme.
type Palette struct {
	Background Color
	Foreground Color

	// Syntax highlighting colors, one per token type
	Keyword  Color
	String   Color
	Number   Color
	Comment  Color
	Function Color

	// UI colors
	UIBackground Color
	UIForeground Color
	UIAccent     Color
}

// TokenColor returns the palette color for a token type, or "" for plain text.
func (p Palette) TokenColor(t TokenType) Color {
	switch t {
	case TokenKeyword:
		return p.Keyword
	case TokenString:
		return p.String
	case TokenNumber:
		return p.Number
	case TokenComment:
		return p.Comment
	case TokenFunction:
		return p.Function
	default:
		return ""
	}
}

// Theme provides styles for rendering gists.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
