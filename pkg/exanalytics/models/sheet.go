package models

// SheetData is what ingest found on a single sheet.
type SheetData struct {
	// Rows contains the non-empty rows.
	Rows []CellRow `json:"rows,omitempty"`
	// PrintAreas are user-defined print ranges.
	PrintAreas []CellRange `json:"print_areas,omitempty"`
	// Table is the detected data block, if any.
	Table *CellRange `json:"table,omitempty"`
	// Headers are the column names taken from the table's first row.
	Headers []string `json:"headers,omitempty"`
	// RecordCount is the number of data rows below the header.
	RecordCount int `json:"record_count"`
	// Charts contains charts embedded on the sheet.
	Charts []EmbeddedChart `json:"charts,omitempty"`
}
