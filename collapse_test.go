package gistview_test

import (
	"testing"

	"github.com/fwojciec/gistview"
	"github.com/stretchr/testify/assert"
)

func TestBlockKey(t *testing.T) {
	t.Parallel()

	t.Run("string form", func(t *testing.T) {
		t.Parallel()

		key := gistview.BlockKey{Filename: "Button.kt", Index: 2}

		assert.Equal(t, "Button.kt-2", key.String())
	})

	t.Run("round trips filenames with dashes", func(t *testing.T) {
		t.Parallel()

		key := gistview.BlockKey{Filename: "my-file-name.ts", Index: 10}

		parsed, ok := gistview.ParseBlockKey(key.String())

		assert.True(t, ok)
		assert.Equal(t, key, parsed)
	})

	t.Run("rejects malformed keys", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"", "noindex", "-1", "file-x", "file-"} {
			_, ok := gistview.ParseBlockKey(s)
			assert.False(t, ok, s)
		}
	})
}

func TestCollapseState(t *testing.T) {
	t.Parallel()

	files := []gistview.File{
		{Filename: "a.py", ImportBlocks: []gistview.ImportBlock{{Start: 0, End: 1}, {Start: 4, End: 4}}},
		{Filename: "b.md"},
	}

	t.Run("every block starts collapsed", func(t *testing.T) {
		t.Parallel()

		state := gistview.NewCollapseState(files)

		assert.Len(t, state, 2)
		assert.True(t, state.Collapsed(gistview.BlockKey{Filename: "a.py", Index: 0}))
		assert.True(t, state.Collapsed(gistview.BlockKey{Filename: "a.py", Index: 1}))
	})

	t.Run("toggle twice restores the state", func(t *testing.T) {
		t.Parallel()

		state := gistview.NewCollapseState(files)
		key := gistview.BlockKey{Filename: "a.py", Index: 0}

		state.Toggle(key)
		assert.False(t, state.Collapsed(key))
		state.Toggle(key)
		assert.True(t, state.Collapsed(key))
	})

	t.Run("toggle leaves other blocks untouched", func(t *testing.T) {
		t.Parallel()

		state := gistview.NewCollapseState(files)

		state.Toggle(gistview.BlockKey{Filename: "a.py", Index: 0})

		assert.True(t, state.Collapsed(gistview.BlockKey{Filename: "a.py", Index: 1}))
	})

	t.Run("unknown keys read as expanded", func(t *testing.T) {
		t.Parallel()

		state := gistview.NewCollapseState(files)

		assert.False(t, state.Collapsed(gistview.BlockKey{Filename: "b.md", Index: 0}))
	})
}

func TestCopyIndicator(t *testing.T) {
	t.Parallel()

	t.Run("mark and clear", func(t *testing.T) {
		t.Parallel()

		var c gistview.CopyIndicator
		seq := c.Mark("a.go")

		assert.True(t, c.Copied("a.go"))
		assert.False(t, c.Copied("b.go"))

		c.Clear(seq)

		assert.False(t, c.Copied("a.go"))
		assert.Empty(t, c.Filename())
	})

	t.Run("stale clear keeps the newer copy", func(t *testing.T) {
		t.Parallel()

		var c gistview.CopyIndicator
		first := c.Mark("a.go")
		c.Mark("b.go")

		c.Clear(first)

		assert.Equal(t, "b.go", c.Filename())
	})

	t.Run("recopying the same file restarts the indicator", func(t *testing.T) {
		t.Parallel()

		var c gistview.CopyIndicator
		first := c.Mark("a.go")
		c.Mark("a.go")

		c.Clear(first)

		assert.True(t, c.Copied("a.go"))
	})
}
