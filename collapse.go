package gistview

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BlockKey identifies an import block within a set of files.
type BlockKey struct {
	Filename string
	Index    int
}

// String returns the "<filename>-<index>" form of the key.
func (k BlockKey) String() string {
	return fmt.Sprintf("%s-%d", k.Filename, k.Index)
}

// ParseBlockKey parses the String form of a BlockKey. The index follows the
// last dash, so filenames containing dashes round-trip.
func ParseBlockKey(s string) (BlockKey, bool) {
	i := strings.LastIndex(s, "-")
	if i <= 0 {
		return BlockKey{}, false
	}
	idx, err := strconv.Atoi(s[i+1:])
	if err != nil || idx < 0 {
		return BlockKey{}, false
	}
	return BlockKey{Filename: s[:i], Index: idx}, true
}

// CollapseState records which import blocks are collapsed.
// Missing keys read as expanded.
type CollapseState map[BlockKey]bool

// NewCollapseState returns a state with every import block of files collapsed.
func NewCollapseState(files []File) CollapseState {
	state := make(CollapseState)
	for _, f := range files {
		for i := range f.ImportBlocks {
			state[BlockKey{Filename: f.Filename, Index: i}] = true
		}
	}
	return state
}

// Collapsed reports whether the block is collapsed.
func (c CollapseState) Collapsed(key BlockKey) bool {
	return c[key]
}

// Toggle flips the block's flag and leaves every other key untouched.
func (c CollapseState) Toggle(key BlockKey) {
	c[key] = !c[key]
}

// CopiedDuration is how long the copied indicator stays visible.
const CopiedDuration = 2 * time.Second

// CopyIndicator tracks the most recently copied file.
// Each Mark returns a token; Clear only takes effect for the latest token so
// an older timer cannot hide a newer copy.
type CopyIndicator struct {
	filename string
	seq      uint64
}

// Mark records filename as copied and returns the token for its clear.
func (c *CopyIndicator) Mark(filename string) uint64 {
	c.seq++
	c.filename = filename
	return c.seq
}

// Clear hides the indicator if seq is the latest mark.
func (c *CopyIndicator) Clear(seq uint64) {
	if seq == c.seq {
		c.filename = ""
	}
}

// Copied reports whether filename is the currently indicated copy.
func (c CopyIndicator) Copied(filename string) bool {
	return c.filename != "" && c.filename == filename
}

// Filename returns the currently indicated filename, or "".
func (c CopyIndicator) Filename() string {
	return c.filename
}
