// Package exanalytics turns spreadsheet rows into 2D charts and 3D scenes.
package exanalytics

import (
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/palette"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/parser"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/render2d"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/render3d"
)

// Mode selects the renderer.
type Mode string

const (
	// ModeAuto draws 3D chart types in 3D and everything else in 2D.
	ModeAuto Mode = "auto"
	// Mode2D always uses the 2D renderer.
	Mode2D Mode = "2d"
	// Mode3D always uses the 3D renderer.
	Mode3D Mode = "3d"
)

// Options configures rendering.
type Options struct {
	// Mode specifies the renderer choice (auto, 2d, 3d).
	Mode Mode
	// Height is the view height in pixels.
	Height int
	// Tension is the curve smoothing of 2D line charts.
	Tension float64
	// Picker chooses 2D colors. Nil means palette.Random.
	Picker palette.Picker
	// Layout holds the 3D scene geometry.
	Layout render3d.Layout
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Mode:    ModeAuto,
		Height:  400,
		Tension: render2d.DefaultOptions().Tension,
		Layout:  render3d.DefaultLayout(),
	}
}

// ShouldRender3D returns whether a chart of type t goes to the 3D renderer.
// PIE is drawn in 2D unless Mode3D is set.
func (o Options) ShouldRender3D(t models.ChartType) bool {
	switch o.Mode {
	case Mode3D:
		return true
	case Mode2D:
		return false
	default:
		return t.Is3D()
	}
}

func (o Options) options2D() render2d.Options {
	return render2d.Options{Height: o.Height, Tension: o.Tension, Picker: o.Picker}
}

func (o Options) options3D() render3d.Options {
	return render3d.Options{Height: o.Height, Layout: o.Layout}
}

// LoadOptions configures spreadsheet ingest.
type LoadOptions struct {
	// Sheet names the sheet to read. Empty means the first sheet.
	Sheet string
	// Range, in A1 notation, overrides table detection.
	Range string
	// Tables tunes table detection.
	Tables parser.TableDetectionParams
}

// DefaultLoadOptions returns default ingest options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Tables: parser.DefaultTableParams()}
}
