package render3d

import (
	"fmt"
	"math"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/normalize"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/palette"
)

// Placeholder texts.
const (
	NoDataMessage = "No data available for 3D chart"
	LineWidth     = 3
)

// Options configures 3D rendering.
type Options struct {
	Height int
	Layout Layout
}

// DefaultOptions returns the default 3D rendering options.
func DefaultOptions() Options {
	return Options{Height: 400, Layout: DefaultLayout()}
}

// Supports reports whether t can be laid out in 3D. PIE is drawn as a
// ring of spheres.
func Supports(t models.ChartType) bool {
	switch t {
	case models.ChartColumn3D, models.ChartBar3D, models.ChartLine3D, models.ChartPie:
		return true
	}
	return false
}

// UnsupportedMessage returns the placeholder text for an unknown type.
func UnsupportedMessage(t models.ChartType) string {
	return fmt.Sprintf("Unsupported 3D chart type: %s", t)
}

// Render normalizes rec and lays it out as a scene.
func Render(rec *models.ChartRecord, opts Options) Result {
	if !Supports(rec.Type) {
		return unsupported(rec.Type)
	}
	return FromSeries(rec.Type, rec.Config, normalize.Normalize(rec), opts)
}

// FromSeries lays out an already normalized series.
func FromSeries(t models.ChartType, cfg models.ChartConfig, s models.NormalizedSeries, opts Options) Result {
	if !Supports(t) {
		return unsupported(t)
	}
	if !s.HasData() {
		return noData()
	}
	if opts.Height <= 0 {
		opts.Height = DefaultOptions().Height
	}
	l := opts.Layout.withDefaults()

	sc := frame(t, cfg, opts.Height)
	names := s.Names()
	values := s.Magnitudes()
	max := MaxValue(values)

	switch t {
	case models.ChartLine3D:
		sc.Primitives = []Primitive{line(l, values, max)}
	case models.ChartPie:
		sc.Primitives = spheres(l, names, values, max)
	default:
		sc.Primitives = bars(l, names, values, max)
	}
	return Result{Scene: sc}
}

func unsupported(t models.ChartType) Result {
	return Result{Placeholder: &models.Placeholder{
		Kind:    models.PlaceholderUnsupported,
		Message: UnsupportedMessage(t),
	}}
}

func noData() Result {
	return Result{Placeholder: &models.Placeholder{
		Kind:    models.PlaceholderNoData,
		Message: NoDataMessage,
	}}
}

// frame builds everything around the data: camera, lights, grid and labels.
func frame(t models.ChartType, cfg models.ChartConfig, height int) *Scene {
	sc := &Scene{
		Type:   t,
		Height: height,
		Camera: Camera{Position: Vec3{X: 8, Y: 6, Z: 8}, FOV: 50},
		Orbit: Orbit{
			EnablePan:    true,
			EnableZoom:   true,
			EnableRotate: true,
			MinDistance:  3,
			MaxDistance:  20,
		},
		Lights: []Light{
			{Kind: LightAmbient, Intensity: 0.6},
			{Kind: LightPoint, Position: &Vec3{X: 10, Y: 10, Z: 10}, Intensity: 0.8},
			{Kind: LightPoint, Position: &Vec3{X: -10, Y: -10, Z: -10}, Intensity: 0.4},
			{Kind: LightDirectional, Position: &Vec3{X: 5, Y: 5, Z: 5}, Intensity: 0.5},
		},
		Grid: Grid{Size: 10, Divisions: 10, Position: Vec3{Y: -1.5}},
		XLabel: Text{
			Content:  cfg.XAxis,
			Position: Vec3{Y: -2.5},
			FontSize: 0.4,
			Color:    "gray",
		},
		YLabel: Text{
			Content:  cfg.YAxis,
			Position: Vec3{X: -6, Y: 2},
			Rotation: Vec3{Z: math.Pi / 2},
			FontSize: 0.4,
			Color:    "gray",
		},
	}
	if cfg.Title != "" {
		sc.Title = &Text{
			Content:  cfg.Title,
			Position: Vec3{Y: 5},
			FontSize: 0.6,
			Color:    "navy",
			Bold:     true,
		}
	}
	return sc
}

func bars(l Layout, names []string, values []float64, max float64) []Primitive {
	n := len(values)
	out := make([]Primitive, 0, n)
	for i, v := range values {
		h := l.Height(v, max)
		p := Primitive{
			Shape:    ShapeBox,
			Position: Vec3{X: l.X(i, n)},
			Color:    palette.Hex(palette.At(palette.Scene, i)),
			Value:    v,
			Size:     Vec3{X: l.BarWidth, Y: h, Z: l.BarWidth},
			Offset:   Vec3{Y: h / 2},
			Motion:   barMotion,
		}
		if i < len(names) && names[i] != "" {
			p.Label = &Text{
				Content:  truncate(names[i], l.BarLabelMax),
				Position: Vec3{Y: -0.8},
				FontSize: 0.25,
				Color:    "black",
			}
		}
		out = append(out, p)
	}
	return out
}

func line(l Layout, values []float64, max float64) Primitive {
	n := len(values)
	points := make([]Vec3, 0, n)
	for i, v := range values {
		points = append(points, Vec3{X: l.X(i, n), Y: l.Height(v, max)})
	}
	return Primitive{
		Shape:     ShapePolyline,
		Color:     palette.Hex(palette.LineAccent),
		Points:    points,
		LineWidth: LineWidth,
		Motion:    lineMotion,
	}
}

func spheres(l Layout, names []string, values []float64, max float64) []Primitive {
	n := len(values)
	out := make([]Primitive, 0, n)
	for i, v := range values {
		r := l.SphereRadius(v, max)
		p := Primitive{
			Shape:    ShapeSphere,
			Position: l.Ring(i, n),
			Color:    palette.Hex(palette.At(palette.Scene, i)),
			Value:    v,
			Radius:   r,
			Motion:   sphereMotion,
		}
		if i < len(names) && names[i] != "" {
			p.Label = &Text{
				Content:  truncate(names[i], l.SphereLabelMax),
				Position: Vec3{Y: -r - 0.5},
				FontSize: 0.25,
				Color:    "black",
			}
		}
		out = append(out, p)
	}
	return out
}
