// Package parser provides spreadsheet reading and header mapping utilities.
package parser

import (
	"strings"

	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts trimmed cell values from a sheet.
// It returns only rows holding at least one non-empty cell. When area is
// non-nil, cells outside it are dropped; column indexes stay absolute.
func ExtractCells(f *excelize.File, sheetName string, area *models.CellRange) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, nil, area), nil
}

// collectRows converts raw row slices into CellRows, applying area clipping.
// lines holds the 1-based row number of each entry; nil means rows are contiguous from 1.
func collectRows(rows [][]string, lines []int, area *models.CellRange) []models.CellRow {
	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if lines != nil {
			rowNum = lines[rowIdx]
		}
		if area != nil && !area.ContainsRow(rowNum) {
			continue
		}

		cells := make([]string, 0, len(row))
		hasData := false
		for colIdx, cellValue := range row {
			if area != nil && colIdx+1 > area.C2 {
				break
			}
			v := strings.TrimSpace(cellValue)
			if area != nil && !area.ContainsCol(colIdx+1) {
				v = ""
			}
			if v != "" {
				hasData = true
			}
			cells = append(cells, v)
		}

		if hasData {
			result = append(result, models.CellRow{R: rowNum, C: cells})
		}
	}
	return result
}
