package parser

import (
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	// DensityMin is the minimum share of non-empty cells in the block.
	DensityMin float64
	// CoverageMin is the minimum share of rows holding any data.
	CoverageMin float64
	// MinNonemptyCells is the minimum number of non-empty cells.
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTables finds the data block of a sheet. It returns at most one
// range, or none when the sheet is too sparse to hold a table.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]models.CellRange, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if r, ok := detectBlock(rows, params); ok {
		return []models.CellRange{r}, nil
	}
	return nil, nil
}

func detectBlock(rows [][]string, params TableDetectionParams) (models.CellRange, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.CellRange{}, false
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmpty, filledRows := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmpty < params.MinNonemptyCells {
		return models.CellRange{}, false
	}
	if float64(nonEmpty)/float64(totalCells) < params.DensityMin {
		return models.CellRange{}, false
	}
	if float64(filledRows)/float64(maxRow-minRow+1) < params.CoverageMin {
		return models.CellRange{}, false
	}

	return models.CellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// findDataBounds finds the bounding box of non-empty cells (0-based).
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells and rows within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) (cells, filledRows int) {
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		filled := false
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				cells++
				filled = true
			}
		}
		if filled {
			filledRows++
		}
	}
	return
}
