package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/gistview/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		startCol int
		expected string
	}{
		{"line without tabs is unchanged", "import a.B", 0, "import a.B"},
		{"empty segment", "", 5, ""},
		{"go import inside a group", "\t\"fmt\"", 0, "        \"fmt\""},
		{"two levels of indentation", "\t\treturn nil", 0, "                return nil"},
		{"makefile recipe", "build:\tgo build", 0, "build:  go build"},
		{"segment after a keyword span", "\tx", 6, "  x"},
		{"segment starting on a tab stop", "\t}", 8, "        }"},
		{"aligned struct field", "Name\tstring", 0, "Name    string"},
		{"wide rune before tab", "日\t// comment", 0, "日      // comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, bubbletea.ExpandTabs(tt.input, tt.startCol))
		})
	}
}
