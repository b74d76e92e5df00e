// Package render2d turns chart records into 2D chart descriptions.
package render2d

import "github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"

// Scale types.
const (
	ScaleCategory = "category"
	ScaleLinear   = "linear"
)

// AxisTitle is the caption drawn next to an axis.
type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// Axis describes one axis of a cartesian chart.
type Axis struct {
	Type        string    `json:"type,omitempty"`
	Position    string    `json:"position,omitempty"`
	Title       AxisTitle `json:"title"`
	BeginAtZero bool      `json:"beginAtZero,omitempty"`
}

// Scales holds the axes of a cartesian chart. Pie charts have none.
type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

// Legend controls the series legend.
type Legend struct {
	Position string `json:"position"`
}

// Title controls the chart heading.
type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text,omitempty"`
}

// Tooltip controls hover tooltips.
type Tooltip struct {
	Enabled bool `json:"enabled"`
}

// Display carries chart-level presentation options.
type Display struct {
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	Legend              Legend  `json:"legend"`
	Title               Title   `json:"title"`
	Tooltip             Tooltip `json:"tooltip"`
	Scales              *Scales `json:"scales,omitempty"`
}

// Dataset is one series of a chart. Categorical charts use Data and
// scatter charts use Points.
type Dataset struct {
	Label  string         `json:"label"`
	Data   []float64      `json:"data,omitempty"`
	Points []models.Point `json:"points,omitempty"`
	// BackgroundColors has one entry per item, or a single entry for
	// charts drawn in one color.
	BackgroundColors []string `json:"backgroundColor"`
	BorderColor      string   `json:"borderColor,omitempty"`
	BorderWidth      float64  `json:"borderWidth,omitempty"`
	Tension          *float64 `json:"tension,omitempty"`
}

// Chart is a complete 2D chart description, ready to be drawn.
type Chart struct {
	Type     models.ChartType `json:"type"`
	Height   int              `json:"height"`
	Labels   []string         `json:"labels,omitempty"`
	Datasets []Dataset        `json:"datasets"`
	Options  Display          `json:"options"`
}

// Primary returns the first dataset, or nil.
func (c *Chart) Primary() *Dataset {
	if c == nil || len(c.Datasets) == 0 {
		return nil
	}
	return &c.Datasets[0]
}

// HasData reports whether c has something to draw: points for scatter
// charts, otherwise one value per label.
func (c *Chart) HasData() bool {
	ds := c.Primary()
	if ds == nil {
		return false
	}
	if c.Type == models.ChartScatter {
		return len(ds.Points) > 0
	}
	return len(ds.Data) > 0 && len(ds.Data) == len(c.Labels)
}

// Result is either a chart or the placeholder shown in its place.
type Result struct {
	Chart       *Chart              `json:"chart,omitempty"`
	Placeholder *models.Placeholder `json:"placeholder,omitempty"`
}
