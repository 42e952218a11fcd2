package parser

import "strings"

// findDataBounds returns the number of rows and columns that hold data.
// Trailing empty rows and columns are excluded. Column count is taken
// from the widest non-empty row so that data written past the last
// header is not lost.
func findDataBounds(rows [][]string) (numRows, numCols int) {
	for rowIdx, row := range rows {
		last := lastNonEmpty(row)
		if last < 0 {
			continue
		}
		numRows = rowIdx + 1
		if last+1 > numCols {
			numCols = last + 1
		}
	}
	return
}

// lastNonEmpty returns the index of the last non-blank cell, or -1.
func lastNonEmpty(row []string) int {
	for colIdx := len(row) - 1; colIdx >= 0; colIdx-- {
		if strings.TrimSpace(row[colIdx]) != "" {
			return colIdx
		}
	}
	return -1
}
