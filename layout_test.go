package gistview_test

import (
	"testing"

	"github.com/fwojciec/gistview"
	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	file := gistview.File{
		Filename:     "app.py",
		Lines:        []string{"import os", "import sys", "", "x = 1", "import re", "y = 2"},
		ImportBlocks: []gistview.ImportBlock{{Start: 0, End: 2}, {Start: 4, End: 4}},
	}

	t.Run("collapsed blocks become summary rows", func(t *testing.T) {
		t.Parallel()

		rows := gistview.Layout(file, gistview.NewCollapseState([]gistview.File{file}))

		assert.Equal(t, []gistview.Row{
			{Kind: gistview.RowCollapsed, Block: 0, Count: 3},
			{Kind: gistview.RowLine, Line: 3},
			{Kind: gistview.RowCollapsed, Block: 1, Count: 1},
			{Kind: gistview.RowLine, Line: 5},
		}, rows)
	})

	t.Run("expanded blocks show header and lines", func(t *testing.T) {
		t.Parallel()

		rows := gistview.Layout(file, gistview.CollapseState{})

		assert.Equal(t, []gistview.Row{
			{Kind: gistview.RowBlockHeader, Block: 0, Count: 3},
			{Kind: gistview.RowImportLine, Line: 0},
			{Kind: gistview.RowImportLine, Line: 1},
			{Kind: gistview.RowImportLine, Line: 2},
			{Kind: gistview.RowLine, Line: 3},
			{Kind: gistview.RowBlockHeader, Block: 1, Count: 1},
			{Kind: gistview.RowImportLine, Line: 4},
			{Kind: gistview.RowLine, Line: 5},
		}, rows)
	})

	t.Run("without blocks every line is plain", func(t *testing.T) {
		t.Parallel()

		rows := gistview.Layout(gistview.File{Lines: []string{"a", "b"}}, nil)

		assert.Equal(t, []gistview.Row{
			{Kind: gistview.RowLine, Line: 0},
			{Kind: gistview.RowLine, Line: 1},
		}, rows)
		assert.Equal(t, 1, rows[0].Number())
		assert.Equal(t, 2, rows[1].Number())
	})

	t.Run("block past the end is clamped", func(t *testing.T) {
		t.Parallel()

		f := gistview.File{
			Filename:     "x.py",
			Lines:        []string{"import os"},
			ImportBlocks: []gistview.ImportBlock{{Start: 0, End: 3}},
		}

		rows := gistview.Layout(f, gistview.CollapseState{{Filename: "x.py", Index: 0}: true})

		assert.Equal(t, []gistview.Row{{Kind: gistview.RowCollapsed, Block: 0, Count: 1}}, rows)
	})

	t.Run("every line appears exactly once when expanded", func(t *testing.T) {
		t.Parallel()

		seen := make(map[int]int)
		for _, row := range gistview.Layout(file, gistview.CollapseState{}) {
			if row.Kind == gistview.RowLine || row.Kind == gistview.RowImportLine {
				seen[row.Line]++
			}
		}

		assert.Len(t, seen, len(file.Lines))
		for line, n := range seen {
			assert.Equal(t, 1, n, "line %d", line)
		}
	})
}

func TestCollapsedSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 import collapsed", gistview.CollapsedSummary(1))
	assert.Equal(t, "3 imports collapsed", gistview.CollapsedSummary(3))
	assert.Equal(t, "0 import collapsed", gistview.CollapsedSummary(0))
}
