package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/gistview"
)

// target is a focusable element: a file header (block == -1) or an import block.
type target struct {
	file  int
	block int
}

func (t target) isFile() bool {
	return t.block < 0
}

// renderConfig holds all rendering parameters for renderFiles.
type renderConfig struct {
	files     []gistview.File
	collapsed gistview.CollapseState
	copied    gistview.CopyIndicator
	focus     target
	focused   bool
	styles    gistview.Styles
	palette   gistview.Palette
	renderer  *lipgloss.Renderer
	width     int
}

// minGutterWidth is the minimum width of the line number column.
const minGutterWidth = 4

// tabWidth is the tab stop interval used when expanding tabs.
const tabWidth = 8

// renderFiles converts the loaded files to a styled string and records the
// line each focus target is rendered on.
func renderFiles(cfg renderConfig) (string, map[target]int) {
	positions := make(map[target]int)
	if len(cfg.files) == 0 {
		return "", positions
	}

	styles := cfg.styles
	renderer := cfg.renderer
	fileHeaderStyle := styleFromColorPair(styles.FileHeader, renderer)
	badgeStyle := styleFromColorPair(styles.LanguageBadge, renderer)
	copiedStyle := styleFromColorPair(styles.Copied, renderer).Background(lipgloss.Color(styles.FileHeader.Background))
	cursorStyle := styleFromColorPair(styles.Cursor, renderer)
	lineNumStyle := styleFromColorPair(styles.LineNumber, renderer)
	collapsedStyle := styleFromColorPair(styles.BlockCollapsed, renderer)
	blockHeaderStyle := styleFromColorPair(styles.BlockHeader, renderer)

	var sb strings.Builder
	lineNum := 0
	for fileIdx, file := range cfg.files {
		if fileIdx > 0 {
			sb.WriteString("\n")
			lineNum++
		}

		fileTarget := target{file: fileIdx, block: -1}
		positions[fileTarget] = lineNum

		// Header format: ── filename [language] ──────── c:copy ──
		headerStyle := fileHeaderStyle
		if cfg.focused && cfg.focus == fileTarget {
			headerStyle = cursorStyle
		}
		action := "c:copy"
		actionStyle := headerStyle
		if cfg.copied.Copied(file.Filename) {
			action = "Copied!"
			actionStyle = copiedStyle
		}
		middle := "── " + file.Filename + " "
		badge := " " + file.Language + " "
		end := " " + action
		suffix := " ──"
		fillWidth := cfg.width - lipgloss.Width(middle) - lipgloss.Width(badge) - lipgloss.Width(end) - lipgloss.Width(suffix) - 1
		if fillWidth < 3 {
			fillWidth = 3
		}
		sb.WriteString(headerStyle.Render(middle))
		sb.WriteString(badgeStyle.Render(badge))
		sb.WriteString(headerStyle.Render(" " + strings.Repeat("─", fillWidth)))
		sb.WriteString(actionStyle.Render(end))
		sb.WriteString(headerStyle.Render(suffix))
		sb.WriteString("\n")
		lineNum++

		gutterWidth := max(digitWidth(len(file.Lines)), minGutterWidth)
		for _, row := range gistview.Layout(file, cfg.collapsed) {
			switch row.Kind {
			case gistview.RowCollapsed, gistview.RowBlockHeader:
				blockTarget := target{file: fileIdx, block: row.Block}
				positions[blockTarget] = lineNum

				text := "▾ " + gistview.ExpandedHeader
				style := blockHeaderStyle
				if row.Kind == gistview.RowCollapsed {
					text = "▸ " + gistview.CollapsedSummary(row.Count)
					style = collapsedStyle
				}
				if cfg.focused && cfg.focus == blockTarget {
					style = cursorStyle
				}
				line := fmt.Sprintf("%*s %s", gutterWidth, "", text)
				sb.WriteString(style.Render(padLine(line, cfg.width)))
			case gistview.RowImportLine:
				gutter := lineNumStyle.Background(lipgloss.Color(styles.ImportLine.Background)).
					Render(formatLineNum(row.Number(), gutterWidth) + " ")
				sb.WriteString(gutter)
				sb.WriteString(renderMarkup(file.Lines[row.Line], styles.ImportLine, cfg.palette, renderer, cfg.width-gutterWidth-1))
			default:
				sb.WriteString(lineNumStyle.Render(formatLineNum(row.Number(), gutterWidth) + " "))
				sb.WriteString(renderMarkup(file.Lines[row.Line], styles.Code, cfg.palette, renderer, cfg.width-gutterWidth-1))
			}
			sb.WriteString("\n")
			lineNum++
		}
	}
	return sb.String(), positions
}

// renderMarkup renders a highlighted line. Each token gets its syntax
// foreground combined with the row background.
func renderMarkup(markup string, colors gistview.ColorPair, palette gistview.Palette, renderer *lipgloss.Renderer, width int) string {
	var sb strings.Builder

	baseStyle := styleFromColorPair(colors, renderer)
	col := 0
	for _, seg := range gistview.ParseMarkup(markup) {
		text := ExpandTabs(gistview.DisplayText(seg.Text), col)
		col += lipgloss.Width(text)

		style := baseStyle
		if fg := palette.TokenColor(seg.Type); fg != "" {
			style = style.Foreground(lipgloss.Color(fg))
		}
		sb.WriteString(style.Render(text))
	}

	if col < width {
		sb.WriteString(baseStyle.Render(strings.Repeat(" ", width-col)))
	}
	return sb.String()
}

// formatLineNum formats a right-aligned line number for the gutter.
func formatLineNum(num, width int) string {
	return fmt.Sprintf("%*d", width, num)
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp gistview.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// padLine pads a line with spaces to the specified display width.
// If the line is already wider, it is returned unchanged.
func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}

// buildTargets lists the focus targets in display order: each file header
// followed by its import blocks.
func buildTargets(files []gistview.File) []target {
	var targets []target
	for fileIdx, file := range files {
		targets = append(targets, target{file: fileIdx, block: -1})
		for blockIdx := range file.ImportBlocks {
			targets = append(targets, target{file: fileIdx, block: blockIdx})
		}
	}
	return targets
}
