package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads every non-empty row of a sheet.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cells := make(map[string]models.Value)
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cells[strconv.Itoa(colIdx+1)] = parseValue(raw)
		}
		if len(cells) > 0 {
			result = append(result, models.CellRow{R: rowIdx + 1, C: cells})
		}
	}

	return result, nil
}

// parseValue turns a formatted cell into a number when it reads as one.
// Infinities, NaN and hex floats stay text.
func parseValue(s string) models.Value {
	t := strings.TrimSpace(s)
	if t == "" {
		return models.String(s)
	}
	if strings.ContainsAny(t, "xXpP") {
		return models.String(s)
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return models.String(s)
	}
	return models.Number(f)
}
