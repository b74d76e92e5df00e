package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas returns each sheet's user-defined print areas. They
// are offered as explicit table ranges when density detection guesses
// wrong.
func ExtractPrintAreas(f *excelize.File) map[string][]models.CellRange {
	result := make(map[string][]models.CellRange)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		for _, part := range strings.Split(dn.RefersTo, ",") {
			sheet, r, err := ParseRange(part)
			if err != nil || sheet == "" {
				continue
			}
			result[sheet] = append(result[sheet], r)
		}
	}
	return result
}

// ParseRange parses "A1:D10", "$A$1:$D$10" or "'My Sheet'!A1:D10". The
// sheet name is empty when the reference has none. A single cell yields
// a one-cell range.
func ParseRange(ref string) (string, models.CellRange, error) {
	ref = strings.TrimSpace(ref)
	var sheet string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) > 2 || parts[0] == "" {
		return "", models.CellRange{}, fmt.Errorf("invalid range %q", ref)
	}
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", models.CellRange{}, err
	}
	c2, r2 := c1, r1
	if len(parts) == 2 {
		if c2, r2, err = excelize.CellNameToCoordinates(parts[1]); err != nil {
			return "", models.CellRange{}, err
		}
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}

	return sheet, models.CellRange{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}
