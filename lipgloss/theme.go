// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/gistview"

// Compile-time interface verification.
var _ gistview.Theme = (*Theme)(nil)

// Theme implements gistview.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  gistview.Styles
	palette gistview.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() gistview.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() gistview.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme called name ("dark" or "light").
// Unknown names return the default theme and ok == false.
func ThemeByName(name string) (theme *Theme, ok bool) {
	switch name {
	case "dark", "":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return DefaultTheme(), false
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: gistview.Styles{
			FileHeader: gistview.ColorPair{
				Foreground: "#f3f4f6", // Near white
				Background: "#374151", // Slate surface
			},
			LanguageBadge: gistview.ColorPair{
				Foreground: "#93c5fd", // Light blue
				Background: "#1e3a5f", // Dark blue
			},
			LineNumber: gistview.ColorPair{
				Foreground: "#6b7280", // Muted gray
			},
			Code: gistview.ColorPair{
				Foreground: "#e5e7eb", // Light gray
			},
			ImportLine: gistview.ColorPair{
				Foreground: "#e5e7eb",
				Background: "#151d2e", // Faint blue tint
			},
			BlockCollapsed: gistview.ColorPair{
				Foreground: "#93c5fd",
				Background: "#172036",
			},
			BlockHeader: gistview.ColorPair{
				Foreground: "#93c5fd",
				Background: "#1a2540",
			},
			Cursor: gistview.ColorPair{
				Foreground: "#1f2937", // Dark text on bright background
				Background: "#60a5fa", // Bright blue
			},
			Copied: gistview.ColorPair{
				Foreground: "#34d399", // Green
			},
			Error: gistview.ColorPair{
				Foreground: "#cc3333", // Red
				Background: "#2b1515",
			},
			StatusBar: gistview.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244",
			},
		},
		palette: gistview.Palette{
			Background: "#111827",
			Foreground: "#e5e7eb",

			// Syntax highlighting colors
			Keyword:  "#60a5fa",
			String:   "#f87171",
			Number:   "#34d399",
			Comment:  "#6b7280",
			Function: "#fbbf24",

			// UI colors
			UIBackground: "#313244",
			UIForeground: "#a6adc8",
			UIAccent:     "#60a5fa",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: gistview.Styles{
			FileHeader: gistview.ColorPair{
				Foreground: "#1f2937", // Dark slate
				Background: "#e5e7eb", // Light surface
			},
			LanguageBadge: gistview.ColorPair{
				Foreground: "#1e40af", // Deep blue
				Background: "#dbeafe", // Pale blue
			},
			LineNumber: gistview.ColorPair{
				Foreground: "#9ca3af", // Muted gray for light theme
			},
			Code: gistview.ColorPair{
				Foreground: "#1f2937",
			},
			ImportLine: gistview.ColorPair{
				Foreground: "#1f2937",
				Background: "#eff6ff", // Faint blue tint
			},
			BlockCollapsed: gistview.ColorPair{
				Foreground: "#1e40af",
				Background: "#dbeafe",
			},
			BlockHeader: gistview.ColorPair{
				Foreground: "#1e40af",
				Background: "#bfdbfe",
			},
			Cursor: gistview.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#2563eb", // Strong blue
			},
			Copied: gistview.ColorPair{
				Foreground: "#047857", // Green
			},
			Error: gistview.ColorPair{
				Foreground: "#b91c1c", // Red
				Background: "#fee2e2",
			},
			StatusBar: gistview.ColorPair{
				Foreground: "#6c6f85",
				Background: "#e6e9ef",
			},
		},
		palette: gistview.Palette{
			Background: "#ffffff",
			Foreground: "#1f2937",

			// Syntax highlighting colors
			Keyword:  "#1d4ed8",
			String:   "#b91c1c",
			Number:   "#047857",
			Comment:  "#9ca3af",
			Function: "#b45309",

			// UI colors
			UIBackground: "#e6e9ef",
			UIForeground: "#6c6f85",
			UIAccent:     "#2563eb",
		},
	}
}
