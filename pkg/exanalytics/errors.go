package exanalytics

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoTable indicates a sheet holds no detectable data block.
var ErrNoTable = errors.New("no table found")

// ErrInvalidChartData indicates a chart record without data or axis config.
var ErrInvalidChartData = errors.New("invalid chart data")

// ErrUnsupportedChartType indicates a chart type no renderer can draw.
var ErrUnsupportedChartType = errors.New("unsupported chart type")

// ExtractionError represents an error while reading a sheet.
type ExtractionError struct {
	SheetName string
	Component string // "cells", "tables", "charts", "records"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// RenderError represents a failure inside a renderer, including panics.
type RenderError struct {
	ChartID   string
	Component string // "2d", "3d"
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error for chart %q (%s): %v", e.ChartID, e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
