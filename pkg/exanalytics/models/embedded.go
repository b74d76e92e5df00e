package models

// ChartSeries is one series of a chart embedded in a workbook.
type ChartSeries struct {
	// Name is the series name.
	Name string `json:"name"`
	// NameRange is the cell reference holding the name, if any.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the category or x value reference.
	XRange string `json:"x_range,omitempty"`
	// YRange is the value reference.
	YRange string `json:"y_range,omitempty"`
}

// EmbeddedChart describes a chart already present in a workbook's drawings.
type EmbeddedChart struct {
	Name string `json:"name"`
	// Kind is the OOXML plot element, e.g. "barChart" or "pie3DChart".
	Kind       string        `json:"kind"`
	Title      string        `json:"title,omitempty"`
	YAxisTitle string        `json:"y_axis_title,omitempty"`
	YAxisRange []float64     `json:"y_axis_range,omitempty"`
	Series     []ChartSeries `json:"series,omitempty"`
	// L, T, W and H are the pixel position and size.
	L int `json:"l"`
	T int `json:"t"`
	W int `json:"w,omitempty"`
	H int `json:"h,omitempty"`
}

var embeddedKinds = map[string]ChartType{
	"barChart":      ChartBar,
	"bar3DChart":    ChartBar3D,
	"lineChart":     ChartLine,
	"line3DChart":   ChartLine3D,
	"pieChart":      ChartPie,
	"pie3DChart":    ChartPie,
	"doughnutChart": ChartPie,
	"scatterChart":  ChartScatter,
}

// Suggest maps the embedded chart's kind to the closest ChartType.
// The second result is false when no supported type fits.
func (c EmbeddedChart) Suggest() (ChartType, bool) {
	t, ok := embeddedKinds[c.Kind]
	return t, ok
}
