// Package normalize converts raw spreadsheet rows into renderer-ready series.
package normalize

import "github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"

// Fallback keys used when the configured axis is missing from a row.
const (
	KeyX     = "x"
	KeyY     = "y"
	KeyLabel = "label"
	// Unknown labels rows whose label chain is empty.
	Unknown = "Unknown"
	// DefaultValue is used when a row has no numeric value.
	DefaultValue = 1
)

// Normalize derives the series a renderer needs from a chart record.
// A stored pre-rendered payload wins over recomputation. The result is a
// fresh value; rec is never modified.
func Normalize(rec *models.ChartRecord) models.NormalizedSeries {
	if pre := rec.Prerendered(); pre != nil {
		return clone(*pre)
	}

	rows := rec.Rows()
	if len(rows) == 0 {
		return models.NormalizedSeries{Kind: models.SeriesCategorical}
	}

	switch rec.Type {
	case models.ChartPie:
		return Pie(rows, rec.Config)
	case models.ChartScatter:
		return Scatter(rows, rec.Config)
	default:
		return Categorical(rows, rec.Config)
	}
}

// Categorical pairs one label with one value per row, in row order.
func Categorical(rows []models.RawRow, cfg models.ChartConfig) models.NormalizedSeries {
	out := models.NormalizedSeries{
		Kind:   models.SeriesCategorical,
		Labels: make([]string, 0, len(rows)),
		Values: make([]float64, 0, len(rows)),
	}
	for _, row := range rows {
		label := Unknown
		if v, ok := row.FirstTruthy(cfg.XAxis, KeyX, KeyLabel); ok {
			label = v.Text()
		}
		value, ok := row.FirstNumber(cfg.YAxis, KeyY)
		if !ok {
			value = DefaultValue
		}
		out.Labels = append(out.Labels, label)
		out.Values = append(out.Values, value)
	}
	return out
}

// Scatter builds one point per row. Missing coordinates become 0.
func Scatter(rows []models.RawRow, cfg models.ChartConfig) models.NormalizedSeries {
	out := models.NormalizedSeries{
		Kind:   models.SeriesPoints,
		Points: make([]models.Point, 0, len(rows)),
	}
	for _, row := range rows {
		x, _ := row.FirstNumber(cfg.XAxis, KeyX)
		y, _ := row.FirstNumber(cfg.YAxis, KeyY)
		out.Points = append(out.Points, models.Point{X: x, Y: y})
	}
	return out
}

// Pie counts rows per category in first-seen order. Rows without a
// category are skipped.
func Pie(rows []models.RawRow, cfg models.ChartConfig) models.NormalizedSeries {
	out := models.NormalizedSeries{Kind: models.SeriesBuckets}
	index := make(map[string]int)
	for _, row := range rows {
		v, ok := row.FirstTruthy(cfg.XAxis, KeyX, KeyLabel)
		if !ok {
			continue
		}
		key := v.Text()
		if i, seen := index[key]; seen {
			out.Buckets[i].Count++
			continue
		}
		index[key] = len(out.Buckets)
		out.Buckets = append(out.Buckets, models.Bucket{Category: key, Count: 1})
	}
	return out
}

func clone(s models.NormalizedSeries) models.NormalizedSeries {
	out := models.NormalizedSeries{Kind: s.Kind}
	if out.Kind == "" {
		out.Kind = models.SeriesCategorical
	}
	if s.Labels != nil {
		out.Labels = append([]string(nil), s.Labels...)
	}
	if s.Values != nil {
		out.Values = append([]float64(nil), s.Values...)
	}
	if s.Points != nil {
		out.Points = append([]models.Point(nil), s.Points...)
	}
	if s.Buckets != nil {
		out.Buckets = append([]models.Bucket(nil), s.Buckets...)
	}
	return out
}
