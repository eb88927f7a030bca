// Package models defines data structures for translation sheet conversion.
package models

// CellRow represents a single sheet row with its trimmed cell values.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C holds cell values indexed by 0-based column. Trailing empty cells may be absent.
	C []string `json:"c"`
}

// Cell returns the value at the 0-based column index, or "" when the row is shorter.
func (r CellRow) Cell(col int) string {
	if col < 0 || col >= len(r.C) {
		return ""
	}
	return r.C[col]
}

// Empty reports whether every cell in the row is empty.
func (r CellRow) Empty() bool {
	for _, v := range r.C {
		if v != "" {
			return false
		}
	}
	return true
}
