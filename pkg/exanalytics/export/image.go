package export

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/palette"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/render2d"
)

// PNG draws c as a PNG image.
func PNG(w io.Writer, c *render2d.Chart) error {
	return draw(w, c, chart.PNG)
}

// SVG draws c as an SVG document.
func SVG(w io.Writer, c *render2d.Chart) error {
	return draw(w, c, chart.SVG)
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func draw(w io.Writer, c *render2d.Chart, rp chart.RendererProvider) error {
	ds := c.Primary()
	if ds == nil {
		return ErrNoCanvas
	}

	var r renderable
	switch c.Type {
	case models.ChartPie:
		r = pieChart(c, ds)
	case models.ChartScatter:
		r = scatterChart(c, ds)
	case models.ChartLine:
		r = lineChart(c, ds)
	default:
		r = barChart(c, ds)
	}
	if err := r.Render(rp, w); err != nil {
		return fmt.Errorf("draw %s chart: %w", c.Type, err)
	}
	return nil
}

func height(c *render2d.Chart) int {
	if c.Height > 0 {
		return c.Height
	}
	return render2d.DefaultOptions().Height
}

func titleOf(c *render2d.Chart) string {
	if c.Options.Title.Display {
		return c.Options.Title.Text
	}
	return ""
}

func axisNames(c *render2d.Chart) (x, y string) {
	if s := c.Options.Scales; s != nil {
		return s.X.Title.Text, s.Y.Title.Text
	}
	return "", ""
}

// colorAt returns the i-th background color, reusing the last entry when
// a single color covers the dataset.
func colorAt(ds *render2d.Dataset, i int) drawing.Color {
	if len(ds.BackgroundColors) == 0 {
		return palette.At(palette.Chart, i)
	}
	if i >= len(ds.BackgroundColors) {
		i = len(ds.BackgroundColors) - 1
	}
	return palette.Parse(ds.BackgroundColors[i])
}

func borderOf(ds *render2d.Dataset) (drawing.Color, float64) {
	width := ds.BorderWidth
	if width <= 0 {
		width = render2d.DefaultBorderWidth
	}
	if ds.BorderColor == "" {
		return colorAt(ds, 0), width
	}
	return palette.Parse(ds.BorderColor), width
}

// span returns a non-degenerate range covering values and zero.
func span(values ...float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// extent is like span but does not force zero into the range.
func extent(values []float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	if hi == lo {
		lo, hi = lo-1, hi+1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func barChart(c *render2d.Chart, ds *render2d.Dataset) chart.BarChart {
	stroke, width := borderOf(ds)
	bars := make([]chart.Value, len(ds.Data))
	for i, v := range ds.Data {
		label := ""
		if i < len(c.Labels) {
			label = c.Labels[i]
		}
		bars[i] = chart.Value{
			Label: label,
			Value: v,
			Style: chart.Style{FillColor: colorAt(ds, i), StrokeColor: stroke, StrokeWidth: width},
		}
	}
	_, yName := axisNames(c)
	return chart.BarChart{
		Title:      titleOf(c),
		Width:      DefaultWidth,
		Height:     height(c),
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis:      chart.YAxis{Name: yName, Range: span(ds.Data...)},
		Bars:       bars,
	}
}

func lineChart(c *render2d.Chart, ds *render2d.Dataset) chart.Chart {
	stroke, width := borderOf(ds)
	xs := make([]float64, len(ds.Data))
	ticks := make([]chart.Tick, len(ds.Data))
	for i := range ds.Data {
		xs[i] = float64(i)
		label := ""
		if i < len(c.Labels) {
			label = c.Labels[i]
		}
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}
	xName, yName := axisNames(c)
	return chart.Chart{
		Title:      titleOf(c),
		Width:      DefaultWidth,
		Height:     height(c),
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		XAxis: chart.XAxis{
			Name:  xName,
			Range: &chart.ContinuousRange{Min: 0, Max: math.Max(float64(len(xs)-1), 1)},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{Name: yName, Range: span(ds.Data...)},
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ds.Data,
			Style: chart.Style{
				StrokeColor: stroke,
				StrokeWidth: math.Max(width, 2),
				DotColor:    stroke,
				DotWidth:    3,
			},
		}},
	}
}

func scatterChart(c *render2d.Chart, ds *render2d.Dataset) chart.Chart {
	xs := make([]float64, len(ds.Points))
	ys := make([]float64, len(ds.Points))
	for i, p := range ds.Points {
		xs[i], ys[i] = p.X, p.Y
	}
	dot := colorAt(ds, 0)
	xName, yName := axisNames(c)
	return chart.Chart{
		Title:      titleOf(c),
		Width:      DefaultWidth,
		Height:     height(c),
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		XAxis:      chart.XAxis{Name: xName, Range: extent(xs)},
		YAxis:      chart.YAxis{Name: yName, Range: extent(ys)},
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotColor:    dot,
				DotWidth:    5,
			},
		}},
	}
}

func pieChart(c *render2d.Chart, ds *render2d.Dataset) chart.PieChart {
	stroke, width := borderOf(ds)
	values := make([]chart.Value, len(ds.Data))
	for i, v := range ds.Data {
		label := ""
		if i < len(c.Labels) {
			label = c.Labels[i]
		}
		values[i] = chart.Value{
			Label: label,
			Value: v,
			Style: chart.Style{FillColor: colorAt(ds, i), StrokeColor: stroke, StrokeWidth: width},
		}
	}
	return chart.PieChart{
		Title:  titleOf(c),
		Width:  height(c),
		Height: height(c),
		Values: values,
	}
}
