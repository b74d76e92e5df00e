// Package export writes 2D chart descriptions as images and HTML pages.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/render2d"
)

// ErrNoCanvas indicates there is no 2D chart to export.
var ErrNoCanvas = errors.New("Chart not found for download")

// ErrPDFNotImplemented is returned by PDF export, which is not available yet.
var ErrPDFNotImplemented = errors.New("PDF download feature coming soon")

// Format is an export file format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// DefaultWidth is the image width used when exporting.
const DefaultWidth = 800

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatPNG, FormatSVG, FormatHTML, FormatPDF:
		return f, nil
	}
	return f, fmt.Errorf("unknown export format %q", s)
}

// Filename returns the download file name for a chart: the chart name, or
// "chart", with the format's extension. Path separators are replaced.
func Filename(name string, f Format) string {
	if name == "" {
		name = "chart"
	}
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	if f == "" {
		f = FormatPNG
	}
	return name + "." + string(f)
}

// Write encodes c in format f. A chart without data is ErrNoCanvas.
func Write(w io.Writer, c *render2d.Chart, f Format) error {
	if !c.HasData() {
		return ErrNoCanvas
	}
	switch f {
	case FormatPNG, "":
		return PNG(w, c)
	case FormatSVG:
		return SVG(w, c)
	case FormatHTML:
		return HTML(w, c)
	case FormatPDF:
		return ErrPDFNotImplemented
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WriteFile writes c into dir as Filename(name, f) and returns the path.
func WriteFile(dir, name string, c *render2d.Chart, f Format) (string, error) {
	if !c.HasData() {
		return "", ErrNoCanvas
	}
	if f == FormatPDF {
		return "", ErrPDFNotImplemented
	}
	path := filepath.Join(dir, Filename(name, f))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(out, c, f); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
