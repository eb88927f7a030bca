package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference such as A1:D10, $A$1:$D$10 or
// 'Sheet Name'!$A$1:$D$10. The sheet name is empty when the reference has none.
func ParseRange(ref string) (string, *models.CellRange, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil, fmt.Errorf("empty range")
	}

	var sheetName string
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area := parseRangeToArea(rangeStr)
	if area == nil {
		return "", nil, fmt.Errorf("invalid range %q", ref)
	}
	return sheetName, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 to a CellRange.
// The corners may be given in either order.
func parseRangeToArea(rangeStr string) *models.CellRange {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.CellRange{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}
}

// RangeString formats a CellRange in A1:D10 notation.
func RangeString(area models.CellRange) string {
	startCell, _ := excelize.CoordinatesToCellName(area.C1, area.R1)
	endCell, _ := excelize.CoordinatesToCellName(area.C2, area.R2)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}
