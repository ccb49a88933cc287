package domain

// LayoutGrid is the column-major arrangement of search results for one frame.
// Columns hold references to results in rank order.
type LayoutGrid struct {
	ColumnWidth   int
	Columns       [][]SearchResult
	RowsPerColumn int
	ScrollOffset  int
	Total         int
	VisibleRows   int
}

// Empty reports the explicit "no matches" state
func (g LayoutGrid) Empty() bool {
	return g.Total == 0
}

// ColumnCount returns the number of columns
func (g LayoutGrid) ColumnCount() int {
	return len(g.Columns)
}

// MaxScrollOffset is the largest valid first-visible-row index
func (g LayoutGrid) MaxScrollOffset() int {
	if g.RowsPerColumn <= g.VisibleRows {
		return 0
	}
	return g.RowsPerColumn - g.VisibleRows
}

// ScrollTo returns a copy of the grid with the offset clamped to
// [0, RowsPerColumn-VisibleRows].
func (g LayoutGrid) ScrollTo(offset int) LayoutGrid {
	g.ScrollOffset = max(0, min(offset, g.MaxScrollOffset()))
	return g
}

// EnsureVisible scrolls the minimum amount needed to show row
func (g LayoutGrid) EnsureVisible(row int) LayoutGrid {
	switch {
	case row < g.ScrollOffset:
		return g.ScrollTo(row)
	case row >= g.ScrollOffset+g.VisibleRows:
		return g.ScrollTo(row - g.VisibleRows + 1)
	}
	return g.ScrollTo(g.ScrollOffset)
}

// VisibleColumn returns the visible window of column col
func (g LayoutGrid) VisibleColumn(col int) []SearchResult {
	if col < 0 || col >= len(g.Columns) {
		return nil
	}
	column := g.Columns[col]
	start := min(g.ScrollOffset, len(column))
	end := min(start+g.VisibleRows, len(column))
	return column[start:end]
}

// Position returns the column and row of the result at rank
func (g LayoutGrid) Position(rank int) (col, row int) {
	if g.RowsPerColumn == 0 {
		return 0, 0
	}
	return rank / g.RowsPerColumn, rank % g.RowsPerColumn
}

// RankAt returns the rank at a cell, or -1 when the cell is empty
func (g LayoutGrid) RankAt(col, row int) int {
	if col < 0 || row < 0 || col >= len(g.Columns) || row >= len(g.Columns[col]) {
		return -1
	}
	return col*g.RowsPerColumn + row
}
