package parser

import "github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/models"

// DataBounds finds the bounding box of non-empty cells.
// It returns false when every row is empty.
func DataBounds(rows []models.CellRow) (models.CellRange, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for _, row := range rows {
		for colIdx, cell := range row.C {
			if cell == "" {
				continue
			}
			if minRow < 0 || row.R < minRow {
				minRow = row.R
			}
			if maxRow < 0 || row.R > maxRow {
				maxRow = row.R
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{R1: minRow, C1: minCol + 1, R2: maxRow, C2: maxCol + 1}, true
}

// HeaderRow returns the index in rows of the first non-empty row, or -1.
func HeaderRow(rows []models.CellRow) int {
	for i, row := range rows {
		if !row.Empty() {
			return i
		}
	}
	return -1
}
