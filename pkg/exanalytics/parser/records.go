package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

// RowsToRecords treats the first row of table as the header and turns every
// following non-empty row into a RawRow keyed by header. Blank headers
// become "Column<N>" and repeated headers get "_2", "_3" suffixes.
func RowsToRecords(cells []models.CellRow, table models.CellRange) ([]string, []models.RawRow) {
	byRow := make(map[int]models.CellRow, len(cells))
	for _, c := range cells {
		byRow[c.R] = c
	}

	headerRow := byRow[table.R1]
	headers := make([]string, 0, table.Cols())
	seen := make(map[string]int)
	for col := table.C1; col <= table.C2; col++ {
		name := strings.TrimSpace(headerRow.At(col).Text())
		if name == "" {
			name = fmt.Sprintf("Column%d", col-table.C1+1)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		headers = append(headers, name)
	}

	var records []models.RawRow
	for r := table.R1 + 1; r <= table.R2; r++ {
		row, ok := byRow[r]
		if !ok {
			continue
		}
		rec := make(models.RawRow)
		for i, h := range headers {
			if v := row.At(table.C1 + i); !v.IsAbsent() {
				rec[h] = v
			}
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}

	return headers, records
}
