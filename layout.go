package gistview

import "fmt"

// RowKind is the kind of a rendered row.
type RowKind int

// Row kinds.
const (
	RowLine        RowKind = iota // A plain code line
	RowImportLine                 // A code line inside an expanded import block
	RowBlockHeader                // Header of an expanded import block
	RowCollapsed                  // Summary of a collapsed import block
)

// Row is one entry of a file's render plan.
type Row struct {
	Kind  RowKind
	Line  int // 0-based line index; valid for RowLine and RowImportLine
	Block int // Import block index; valid for header and collapsed rows
	Count int // Lines in the block; valid for header and collapsed rows
}

// Number returns the 1-based line number shown in the gutter.
func (r Row) Number() int {
	return r.Line + 1
}

// Layout computes the rows to render for f: plain lines interleaved with
// import blocks, each either a single summary row when collapsed or a header
// followed by its lines when expanded.
func Layout(f File, state CollapseState) []Row {
	n := len(f.Lines)
	rows := make([]Row, 0, n+len(f.ImportBlocks))
	current := 0

	for blockIdx, block := range f.ImportBlocks {
		for i := current; i < block.Start && i < n; i++ {
			rows = append(rows, Row{Kind: RowLine, Line: i})
		}

		count := min(block.End, n-1) - block.Start + 1
		if count < 0 {
			count = 0
		}

		key := BlockKey{Filename: f.Filename, Index: blockIdx}
		if state.Collapsed(key) {
			rows = append(rows, Row{Kind: RowCollapsed, Block: blockIdx, Count: count})
		} else {
			rows = append(rows, Row{Kind: RowBlockHeader, Block: blockIdx, Count: count})
			for i := block.Start; i <= block.End && i < n; i++ {
				rows = append(rows, Row{Kind: RowImportLine, Line: i})
			}
		}

		current = max(current, block.End+1)
	}

	for i := current; i < n; i++ {
		rows = append(rows, Row{Kind: RowLine, Line: i})
	}

	return rows
}

// CollapsedSummary returns the text of a collapsed block row.
func CollapsedSummary(count int) string {
	if count > 1 {
		return fmt.Sprintf("%d imports collapsed", count)
	}
	return fmt.Sprintf("%d import collapsed", count)
}

// ExpandedHeader is the text of an expanded block's header row.
const ExpandedHeader = "Imports"
