package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/palette"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/render2d"
)

// HTML writes c as a self-contained interactive ECharts page.
func HTML(w io.Writer, c *render2d.Chart) error {
	ds := c.Primary()
	if ds == nil {
		return ErrNoCanvas
	}

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: pageTitle(c),
			Width:     fmt.Sprintf("%dpx", DefaultWidth),
			Height:    fmt.Sprintf("%dpx", height(c)),
		}),
		charts.WithTitleOpts(opts.Title{Title: titleOf(c)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(c.Options.Tooltip.Enabled)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	}

	var err error
	switch c.Type {
	case models.ChartPie:
		err = htmlPie(c, ds, global).Render(w)
	case models.ChartScatter:
		err = htmlScatter(c, ds, global).Render(w)
	case models.ChartLine:
		err = htmlLine(c, ds, global).Render(w)
	default:
		err = htmlBar(c, ds, global).Render(w)
	}
	if err != nil {
		return fmt.Errorf("write %s chart page: %w", c.Type, err)
	}
	return nil
}

func pageTitle(c *render2d.Chart) string {
	if t := titleOf(c); t != "" {
		return t
	}
	return c.Type.Label()
}

func axisOpts(c *render2d.Chart, xType string) []charts.GlobalOpts {
	xName, yName := axisNames(c)
	return []charts.GlobalOpts{
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: xType}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	}
}

// cssColor returns the i-th background color in CSS form.
func cssColor(ds *render2d.Dataset, i int) string {
	return palette.CSS(colorAt(ds, i))
}

func itemStyle(ds *render2d.Dataset, i int) *opts.ItemStyle {
	stroke, width := borderOf(ds)
	return &opts.ItemStyle{
		Color:       cssColor(ds, i),
		BorderColor: palette.CSS(stroke),
		BorderWidth: float32(width),
	}
}

func htmlBar(c *render2d.Chart, ds *render2d.Dataset, global []charts.GlobalOpts) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(global, axisOpts(c, "category")...)...)

	data := make([]opts.BarData, len(ds.Data))
	for i, v := range ds.Data {
		data[i] = opts.BarData{Value: v, ItemStyle: itemStyle(ds, i)}
	}
	bar.SetXAxis(c.Labels).AddSeries(ds.Label, data)
	return bar
}

func htmlLine(c *render2d.Chart, ds *render2d.Dataset, global []charts.GlobalOpts) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(global, axisOpts(c, "category")...)...)

	data := make([]opts.LineData, len(ds.Data))
	for i, v := range ds.Data {
		data[i] = opts.LineData{Value: v}
	}
	stroke, width := borderOf(ds)
	smooth := ds.Tension != nil && *ds.Tension > 0
	line.SetXAxis(c.Labels).AddSeries(ds.Label, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(smooth)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.CSS(stroke), BorderWidth: float32(width)}),
	)
	return line
}

func htmlScatter(c *render2d.Chart, ds *render2d.Dataset, global []charts.GlobalOpts) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(append(global, axisOpts(c, "value")...)...)

	data := make([]opts.ScatterData, len(ds.Points))
	for i, p := range ds.Points {
		data[i] = opts.ScatterData{Value: []float64{p.X, p.Y}, SymbolSize: 10}
	}
	sc.AddSeries(ds.Label, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: cssColor(ds, 0)}))
	return sc
}

func htmlPie(c *render2d.Chart, ds *render2d.Dataset, global []charts.GlobalOpts) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(global...)

	data := make([]opts.PieData, len(ds.Data))
	for i, v := range ds.Data {
		name := ""
		if i < len(c.Labels) {
			name = c.Labels[i]
		}
		data[i] = opts.PieData{Name: name, Value: v, ItemStyle: itemStyle(ds, i)}
	}
	pie.AddSeries(ds.Label, data)
	return pie
}
