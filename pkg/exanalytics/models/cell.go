package models

import "strconv"

// CellRow is one non-empty spreadsheet row.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps the 1-based column index, as a string, to the cell value.
	C map[string]Value `json:"c"`
}

// At returns the value in the given 1-based column, or absent.
func (r CellRow) At(col int) Value {
	if r.C == nil {
		return Absent()
	}
	return r.C[strconv.Itoa(col)]
}
