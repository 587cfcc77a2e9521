package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ExpandTabs replaces tabs with spaces up to the next tab stop. A highlighted
// line is rendered one markup segment at a time, so startCol is the display
// column where s begins within the line.
func ExpandTabs(s string, startCol int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		if r != '\t' {
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
			continue
		}
		next := (col/tabWidth + 1) * tabWidth
		sb.WriteString(strings.Repeat(" ", next-col))
		col = next
	}
	return sb.String()
}
