package exanalytics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/parser"
	"github.com/xuri/excelize/v2"
)

// LocalChartID is the id of charts built from a local file.
const LocalChartID = "local"

func open(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return f, nil
}

// LoadUpload reads one sheet of an .xlsx file into an UploadRecord, the
// same shape the API returns for a processed upload.
func LoadUpload(path string, opts LoadOptions) (*models.UploadRecord, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := opts.Sheet
	var table *models.CellRange
	if opts.Range != "" {
		refSheet, r, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, NewExtractionError(sheet, "tables", err)
		}
		if refSheet != "" {
			sheet = refSheet
		}
		table = &r
	}
	if sheet == "" {
		sheet = f.GetSheetList()[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	cells, err := parser.ExtractCells(f, sheet)
	if err != nil {
		return nil, NewExtractionError(sheet, "cells", err)
	}

	if table == nil {
		params := opts.Tables
		if params == (parser.TableDetectionParams{}) {
			params = parser.DefaultTableParams()
		}
		tables, err := parser.DetectTables(f, sheet, params)
		if err != nil {
			return nil, NewExtractionError(sheet, "tables", err)
		}
		if len(tables) == 0 {
			return nil, NewExtractionError(sheet, "tables", ErrNoTable)
		}
		table = &tables[0]
	}

	headers, rows := parser.RowsToRecords(cells, *table)
	return &models.UploadRecord{
		Headers: headers,
		Rows:    rows,
		Metadata: models.UploadMetadata{
			TotalRows:    len(rows),
			TotalColumns: len(headers),
			FileName:     filepath.Base(path),
			SheetName:    sheet,
		},
	}, nil
}

// Inspect summarises every sheet of an .xlsx file: its data block, headers,
// print areas and embedded charts.
func Inspect(path string) (*models.WorkbookData, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	printAreas := parser.ExtractPrintAreas(f)
	wb := &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetOrder: f.GetSheetList(),
		Sheets:     make(map[string]models.SheetData),
	}

	for _, sheetName := range wb.SheetOrder {
		rows, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			// Unreadable sheets are listed without rows.
			rows = nil
		}
		sd := models.SheetData{PrintAreas: printAreas[sheetName]}

		tables, err := parser.DetectTables(f, sheetName, parser.DefaultTableParams())
		if err == nil && len(tables) > 0 {
			sd.Table = &tables[0]
		} else if len(sd.PrintAreas) > 0 {
			sd.Table = &sd.PrintAreas[0]
		}
		if sd.Table != nil {
			headers, records := parser.RowsToRecords(rows, *sd.Table)
			sd.Headers = headers
			sd.RecordCount = len(records)
		}
		wb.Sheets[sheetName] = sd
	}

	// Charts require direct OOXML parsing; a failure there leaves sheets without charts.
	if charts, err := parser.ExtractCharts(path); err == nil {
		for sheetName, list := range charts {
			if sheet, ok := wb.Sheets[sheetName]; ok {
				sheet.Charts = list
				wb.Sheets[sheetName] = sheet
			}
		}
	}

	return wb, nil
}

// RecordFromUpload builds a chart record from local upload data so it can
// be rendered without the API.
func RecordFromUpload(upload *models.UploadRecord, cfg models.ChartConfig, name string) *models.ChartRecord {
	if name == "" {
		name = cfg.Title
	}
	rec := &models.ChartRecord{
		ID:       LocalChartID,
		UploadID: upload.UploadID,
		Name:     name,
		Type:     cfg.ChartType,
		Config:   cfg,
		Data:     &models.ChartData{ChartData: upload.Rows},
	}
	return rec
}
