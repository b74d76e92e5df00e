package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// CellRange is a rectangular block of cells.
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

// String formats the range in A1 notation, e.g. "A1:D10".
func (r CellRange) String() string {
	start, err := excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", start, end)
}

// MarshalText encodes the range in A1 notation.
func (r CellRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Rows returns the number of rows covered.
func (r CellRange) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns covered.
func (r CellRange) Cols() int { return r.C2 - r.C1 + 1 }

// Contains reports whether the 1-based cell (row, col) lies inside r.
func (r CellRange) Contains(row, col int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}
