package models

// CellRange represents cell coordinate bounds on a sheet.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// ContainsRow reports whether row r (1-based) lies inside the range.
func (a CellRange) ContainsRow(r int) bool {
	return r >= a.R1 && r <= a.R2
}

// ContainsCol reports whether column c (1-based) lies inside the range.
func (a CellRange) ContainsCol(c int) bool {
	return c >= a.C1 && c <= a.C2
}
