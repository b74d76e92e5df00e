package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ChartType is the chart kind. It selects the renderer (2D or 3D) and the
// geometry within it. Unknown values are kept verbatim so renderers can
// report them.
type ChartType string

const (
	ChartBar      ChartType = "BAR"
	ChartLine     ChartType = "LINE"
	ChartPie      ChartType = "PIE"
	ChartScatter  ChartType = "SCATTER"
	ChartColumn3D ChartType = "COLUMN_3D"
	ChartBar3D    ChartType = "BAR_3D"
	ChartLine3D   ChartType = "LINE_3D"
)

// ChartTypes lists every supported chart type in display order.
var ChartTypes = []ChartType{
	ChartBar, ChartLine, ChartPie, ChartScatter,
	ChartColumn3D, ChartBar3D, ChartLine3D,
}

var chartTypeLabels = map[ChartType]string{
	ChartBar:      "Bar Chart",
	ChartLine:     "Line Chart",
	ChartPie:      "Pie Chart",
	ChartScatter:  "Scatter Plot",
	ChartColumn3D: "3D Column Chart",
	ChartBar3D:    "3D Bar Chart",
	ChartLine3D:   "3D Line Chart",
}

// Valid reports whether t is one of the supported chart types.
func (t ChartType) Valid() bool {
	_, ok := chartTypeLabels[t]
	return ok
}

// Is3D reports whether t is drawn by the 3D renderer.
func (t ChartType) Is3D() bool {
	switch t {
	case ChartColumn3D, ChartBar3D, ChartLine3D:
		return true
	}
	return false
}

// Label returns the human readable name, or the raw value if unknown.
func (t ChartType) Label() string {
	if l, ok := chartTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// ParseChartType parses a chart type case-insensitively.
func ParseChartType(s string) (ChartType, error) {
	t := ChartType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return t, fmt.Errorf("unknown chart type %q", s)
	}
	return t, nil
}

// ChartStyling carries optional styling overrides chosen at creation time.
type ChartStyling struct {
	BackgroundColor string   `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	BorderColor     string   `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	BorderWidth     *float64 `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
}

// ChartConfig is the axis and type configuration of a chart.
type ChartConfig struct {
	// XAxis names the row key used for labels, categories or x values.
	XAxis string `json:"xAxis"`
	// YAxis names the row key used for values or y values.
	YAxis string `json:"yAxis"`
	// ChartType mirrors ChartRecord.Type as stored by the API.
	ChartType ChartType `json:"chartType,omitempty"`
	// Title is the optional chart title.
	Title string `json:"title,omitempty"`
	// Styling holds optional style overrides.
	Styling *ChartStyling `json:"styling,omitempty"`
}

// PrerenderedPayload is an already normalized payload stored with a chart.
type PrerenderedPayload struct {
	Data *NormalizedSeries `json:"data,omitempty"`
}

// UnmarshalJSON accepts the normalized form, which carries a "kind", and
// the chart-library form the API stores:
//
//	{"data": {"labels": [...], "datasets": [{"data": [...]}]}}
//
// Only the first dataset is read. Numeric entries become Values and {x, y}
// entries become Points; anything else counts as 0.
func (p *PrerenderedPayload) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.Data = nil
	data := bytes.TrimSpace(raw.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var shape struct {
		Kind     SeriesKind `json:"kind"`
		Labels   []Value    `json:"labels"`
		Datasets []struct {
			Data []json.RawMessage `json:"data"`
		} `json:"datasets"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return err
	}
	if shape.Kind != "" {
		var s NormalizedSeries
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.Data = &s
		return nil
	}

	s := NormalizedSeries{Kind: SeriesCategorical}
	for _, l := range shape.Labels {
		s.Labels = append(s.Labels, l.Text())
	}
	if len(shape.Datasets) > 0 {
		for _, item := range shape.Datasets[0].Data {
			item = bytes.TrimSpace(item)
			if len(item) > 0 && item[0] == '{' {
				var pt struct {
					X Value `json:"x"`
					Y Value `json:"y"`
				}
				if err := json.Unmarshal(item, &pt); err != nil {
					return err
				}
				x, _ := pt.X.Float()
				y, _ := pt.Y.Float()
				s.Points = append(s.Points, Point{X: x, Y: y})
				continue
			}
			var v Value
			if err := json.Unmarshal(item, &v); err != nil {
				return err
			}
			f, _ := v.Float()
			s.Values = append(s.Values, f)
		}
	}
	if len(s.Points) > 0 {
		s.Kind = SeriesPoints
		s.Values = nil
	}
	p.Data = &s
	return nil
}

// ChartData holds the source rows of a chart.
type ChartData struct {
	// ChartData is the ordered list of rows, one per spreadsheet row.
	ChartData []RawRow `json:"chartData"`
	// ChartConfig, when it carries data, is preferred over recomputation.
	ChartConfig *PrerenderedPayload `json:"chartConfig,omitempty"`
}

// ChartRecord is the persisted description of one chart.
type ChartRecord struct {
	ID        string      `json:"id"`
	UploadID  string      `json:"uploadId,omitempty"`
	Name      string      `json:"name,omitempty"`
	Type      ChartType   `json:"type"`
	Config    ChartConfig `json:"config"`
	Data      *ChartData  `json:"data,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Rows returns the chart's source rows, or nil when there is no data.
func (c *ChartRecord) Rows() []RawRow {
	if c == nil || c.Data == nil {
		return nil
	}
	return c.Data.ChartData
}

// Prerendered returns the stored normalized payload, if any.
func (c *ChartRecord) Prerendered() *NormalizedSeries {
	if c == nil || c.Data == nil || c.Data.ChartConfig == nil {
		return nil
	}
	return c.Data.ChartConfig.Data
}

// DisplayName returns the name, the title, or "Untitled Chart".
func (c *ChartRecord) DisplayName() string {
	switch {
	case c == nil:
		return "Untitled Chart"
	case c.Name != "":
		return c.Name
	case c.Config.Title != "":
		return c.Config.Title
	default:
		return "Untitled Chart"
	}
}
