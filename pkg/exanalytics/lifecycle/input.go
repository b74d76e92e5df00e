// Package lifecycle drives chart create, edit, view, delete and download
// against the chart API.
package lifecycle

import (
	"sort"
	"strings"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

// Validation messages.
const (
	MsgXAxisRequired    = "X-axis is required"
	MsgYAxisRequired    = "Y-axis is required"
	MsgInvalidChartType = "Invalid chart type"
	MsgUnknownColumn    = "Column not found in upload"
)

// ChartInput is the intent to create or edit a chart.
type ChartInput struct {
	XAxis     string
	YAxis     string
	ChartType models.ChartType
	Title     string
	Styling   *models.ChartStyling
}

// InputFromRecord prefills an edit from an existing chart.
func InputFromRecord(rec *models.ChartRecord) ChartInput {
	t := rec.Type
	if t == "" {
		t = rec.Config.ChartType
	}
	return ChartInput{
		XAxis:     rec.Config.XAxis,
		YAxis:     rec.Config.YAxis,
		ChartType: t,
		Title:     rec.Config.Title,
		Styling:   rec.Config.Styling,
	}
}

// Config returns the request body sent to the API.
func (in ChartInput) Config() models.ChartConfig {
	return models.ChartConfig{
		XAxis:     in.XAxis,
		YAxis:     in.YAxis,
		ChartType: in.ChartType,
		Title:     in.Title,
		Styling:   in.Styling,
	}
}

// ValidationError maps field names to messages.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = e[f]
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the fields the API requires.
func (in ChartInput) Validate() error {
	errs := ValidationError{}
	if strings.TrimSpace(in.XAxis) == "" {
		errs["xAxis"] = MsgXAxisRequired
	}
	if strings.TrimSpace(in.YAxis) == "" {
		errs["yAxis"] = MsgYAxisRequired
	}
	if !in.ChartType.Valid() {
		errs["chartType"] = MsgInvalidChartType
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateAgainst also requires both axes to name columns of upload.
func (in ChartInput) ValidateAgainst(upload *models.UploadRecord) error {
	errs := ValidationError{}
	if err := in.Validate(); err != nil {
		errs = err.(ValidationError)
	}
	if upload != nil {
		if _, ok := errs["xAxis"]; !ok && !upload.HasHeader(in.XAxis) {
			errs["xAxis"] = MsgUnknownColumn
		}
		if _, ok := errs["yAxis"]; !ok && !upload.HasHeader(in.YAxis) {
			errs["yAxis"] = MsgUnknownColumn
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// AxisOptions returns the columns a chart axis can be bound to.
func AxisOptions(upload *models.UploadRecord) []string {
	if upload == nil {
		return nil
	}
	out := make([]string, 0, len(upload.Headers))
	for _, h := range upload.Headers {
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}
