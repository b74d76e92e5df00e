package render2d

import (
	"fmt"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/normalize"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/palette"
)

// Placeholder texts.
const (
	NoDataMessage      = "No data available"
	NoDataHint         = "Please check your data source"
	UnsupportedHint    = "Please select a different chart type"
	DefaultValueLabel  = "Value"
	DefaultBorderWidth = 1
)

// Options configures 2D rendering.
type Options struct {
	// Height is the drawing height in pixels.
	Height int
	// Tension is the curve smoothing of line charts.
	Tension float64
	// Picker chooses segment colors. Nil means palette.Random.
	Picker palette.Picker
}

// DefaultOptions returns the default 2D rendering options.
func DefaultOptions() Options {
	return Options{
		Height:  400,
		Tension: 0.4,
		Picker:  palette.Random,
	}
}

// Supports reports whether t can be drawn in 2D.
func Supports(t models.ChartType) bool {
	switch t {
	case models.ChartBar, models.ChartLine, models.ChartPie, models.ChartScatter:
		return true
	}
	return false
}

// UnsupportedMessage returns the placeholder text for an unknown type.
func UnsupportedMessage(t models.ChartType) string {
	return fmt.Sprintf("Unsupported chart type: %s", t)
}

// Render normalizes rec and describes it as a 2D chart. It never panics on
// bad input: unsupported types and empty data yield a placeholder.
func Render(rec *models.ChartRecord, opts Options) Result {
	if !Supports(rec.Type) {
		return Result{Placeholder: &models.Placeholder{
			Kind:    models.PlaceholderUnsupported,
			Message: UnsupportedMessage(rec.Type),
			Hint:    UnsupportedHint,
		}}
	}
	return FromSeries(rec.Type, rec.Config, normalize.Normalize(rec), opts)
}

// FromSeries describes an already normalized series.
func FromSeries(t models.ChartType, cfg models.ChartConfig, s models.NormalizedSeries, opts Options) Result {
	if !Supports(t) {
		return Result{Placeholder: &models.Placeholder{
			Kind:    models.PlaceholderUnsupported,
			Message: UnsupportedMessage(t),
			Hint:    UnsupportedHint,
		}}
	}
	if !s.HasData() {
		return Result{Placeholder: &models.Placeholder{
			Kind:    models.PlaceholderNoData,
			Message: NoDataMessage,
			Hint:    NoDataHint,
		}}
	}
	if opts.Picker == nil {
		opts.Picker = palette.Random
	}
	if opts.Height <= 0 {
		opts.Height = DefaultOptions().Height
	}

	c := &Chart{
		Type:    t,
		Height:  opts.Height,
		Options: display(t, cfg),
	}
	switch t {
	case models.ChartPie:
		c.Labels = s.Names()
		c.Datasets = []Dataset{pieDataset(cfg, s, opts)}
	case models.ChartScatter:
		c.Datasets = []Dataset{scatterDataset(cfg, s, opts)}
	default:
		c.Labels = s.Names()
		c.Datasets = []Dataset{categoricalDataset(t, cfg, s, opts)}
	}
	applyStyling(c, cfg.Styling)
	return Result{Chart: c}
}

func display(t models.ChartType, cfg models.ChartConfig) Display {
	d := Display{
		Responsive: true,
		Legend:     Legend{Position: "top"},
		Title:      Title{Display: cfg.Title != "", Text: cfg.Title},
		Tooltip:    Tooltip{Enabled: true},
	}
	switch t {
	case models.ChartPie:
	case models.ChartScatter:
		d.Scales = &Scales{
			X: Axis{Type: ScaleLinear, Position: "bottom", Title: AxisTitle{Display: true, Text: cfg.XAxis}},
			Y: Axis{Type: ScaleLinear, Title: AxisTitle{Display: true, Text: cfg.YAxis}},
		}
	default:
		d.Scales = &Scales{
			X: Axis{Type: ScaleCategory, Title: AxisTitle{Display: true, Text: cfg.XAxis}},
			Y: Axis{Type: ScaleLinear, Title: AxisTitle{Display: true, Text: cfg.YAxis}, BeginAtZero: true},
		}
	}
	return d
}

func pieDataset(cfg models.ChartConfig, s models.NormalizedSeries, opts Options) Dataset {
	label := cfg.YAxis
	if label == "" {
		label = cfg.XAxis
	}
	values := s.Magnitudes()
	return Dataset{
		Label:            label,
		Data:             values,
		BackgroundColors: pick(opts.Picker, len(values)),
		BorderWidth:      DefaultBorderWidth,
	}
}

func scatterDataset(cfg models.ChartConfig, s models.NormalizedSeries, opts Options) Dataset {
	points := s.Points
	if s.Kind != models.SeriesPoints {
		// Stored payloads of another shape are plotted against their index.
		for i, v := range s.Magnitudes() {
			points = append(points, models.Point{X: float64(i), Y: v})
		}
	}
	return Dataset{
		Label:            fmt.Sprintf("%s vs %s", cfg.XAxis, cfg.YAxis),
		Points:           append([]models.Point(nil), points...),
		BackgroundColors: pick(opts.Picker, 1),
		BorderColor:      palette.CSS(opts.Picker.Pick(palette.Chart)),
	}
}

func categoricalDataset(t models.ChartType, cfg models.ChartConfig, s models.NormalizedSeries, opts Options) Dataset {
	label := cfg.YAxis
	if label == "" {
		label = DefaultValueLabel
	}
	values := s.Magnitudes()
	ds := Dataset{
		Label:       label,
		Data:        values,
		BorderColor: palette.CSS(opts.Picker.Pick(palette.Chart)),
		BorderWidth: DefaultBorderWidth,
	}
	if t == models.ChartLine {
		tension := opts.Tension
		ds.Tension = &tension
		ds.BackgroundColors = pick(opts.Picker, 1)
	} else {
		ds.BackgroundColors = pick(opts.Picker, len(values))
	}
	return ds
}

func pick(p palette.Picker, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = palette.CSS(p.Pick(palette.Chart))
	}
	return out
}

func applyStyling(c *Chart, st *models.ChartStyling) {
	ds := c.Primary()
	if st == nil || ds == nil {
		return
	}
	if st.BackgroundColor != "" {
		for i := range ds.BackgroundColors {
			ds.BackgroundColors[i] = st.BackgroundColor
		}
	}
	if st.BorderColor != "" {
		ds.BorderColor = st.BorderColor
	}
	if st.BorderWidth != nil {
		ds.BorderWidth = *st.BorderWidth
	}
}
