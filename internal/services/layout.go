package services

import "github.com/hypr-showkey/showkey/internal/domain"

// MinColumnWidth is the narrowest column in character cells
const MinColumnWidth = 50

// LayoutEngine arranges search results into a column-major grid
type LayoutEngine struct {
	// RowHeight is the number of terminal lines one result occupies
	RowHeight int
}

// NewLayoutEngine creates a layout engine; rows take two lines when
// descriptions are shown under the combo
func NewLayoutEngine(showDescriptions bool) LayoutEngine {
	if showDescriptions {
		return LayoutEngine{RowHeight: 2}
	}
	return LayoutEngine{RowHeight: 1}
}

// ColumnCount returns max(1, width/MinColumnWidth)
func ColumnCount(width int) int {
	return max(1, width/MinColumnWidth)
}

// Layout computes the grid for one frame. Results are placed column-major:
// rank i lands in column i/rowsPerColumn, row i%rowsPerColumn.
// Nothing is truncated; rows beyond the height are reached by scrolling.
func (e LayoutEngine) Layout(results []domain.SearchResult, width, height int) domain.LayoutGrid {
	rowHeight := max(1, e.RowHeight)
	grid := domain.LayoutGrid{
		Total:       len(results),
		VisibleRows: max(1, height/rowHeight),
	}
	if len(results) == 0 {
		return grid
	}

	columns := ColumnCount(width)
	grid.ColumnWidth = max(1, width/columns)
	grid.RowsPerColumn = (len(results) + columns - 1) / columns

	for start := 0; start < len(results); start += grid.RowsPerColumn {
		end := min(start+grid.RowsPerColumn, len(results))
		grid.Columns = append(grid.Columns, results[start:end:end])
	}

	return grid
}
