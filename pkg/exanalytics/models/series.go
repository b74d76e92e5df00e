package models

// SeriesKind identifies the shape of a NormalizedSeries.
type SeriesKind string

const (
	// SeriesCategorical holds parallel label and value slices.
	SeriesCategorical SeriesKind = "categorical"
	// SeriesPoints holds x/y pairs.
	SeriesPoints SeriesKind = "points"
	// SeriesBuckets holds category counts.
	SeriesBuckets SeriesKind = "buckets"
)

// Point is an x/y coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bucket is a category and the number of rows that fell into it.
type Bucket struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// NormalizedSeries is renderer-ready chart data derived from a ChartRecord.
// Only the fields matching Kind are populated.
type NormalizedSeries struct {
	Kind    SeriesKind `json:"kind"`
	Labels  []string   `json:"labels,omitempty"`
	Values  []float64  `json:"values,omitempty"`
	Points  []Point    `json:"points,omitempty"`
	Buckets []Bucket   `json:"buckets,omitempty"`
}

// Len returns the number of data items in the series.
func (s NormalizedSeries) Len() int {
	switch s.Kind {
	case SeriesPoints:
		return len(s.Points)
	case SeriesBuckets:
		return len(s.Buckets)
	default:
		if len(s.Labels) > len(s.Values) {
			return len(s.Labels)
		}
		return len(s.Values)
	}
}

// IsEmpty reports whether the series has nothing to draw.
func (s NormalizedSeries) IsEmpty() bool {
	return len(s.Labels) == 0 && len(s.Values) == 0 &&
		len(s.Points) == 0 && len(s.Buckets) == 0
}

// HasData reports whether the series can be drawn: it has items and, for
// categorical series, exactly one value per label.
func (s NormalizedSeries) HasData() bool {
	switch s.Kind {
	case SeriesPoints, SeriesBuckets:
		return s.Len() > 0
	default:
		return len(s.Values) > 0 && len(s.Labels) == len(s.Values)
	}
}

// Magnitudes returns one numeric value per item: values for categorical
// series, counts for buckets and y for points.
func (s NormalizedSeries) Magnitudes() []float64 {
	switch s.Kind {
	case SeriesPoints:
		out := make([]float64, len(s.Points))
		for i, p := range s.Points {
			out[i] = p.Y
		}
		return out
	case SeriesBuckets:
		out := make([]float64, len(s.Buckets))
		for i, b := range s.Buckets {
			out[i] = float64(b.Count)
		}
		return out
	default:
		out := make([]float64, len(s.Values))
		copy(out, s.Values)
		return out
	}
}

// Names returns one label per item: labels, bucket categories, or the
// formatted x of each point.
func (s NormalizedSeries) Names() []string {
	switch s.Kind {
	case SeriesPoints:
		out := make([]string, len(s.Points))
		for i, p := range s.Points {
			out[i] = Number(p.X).Text()
		}
		return out
	case SeriesBuckets:
		out := make([]string, len(s.Buckets))
		for i, b := range s.Buckets {
			out[i] = b.Category
		}
		return out
	default:
		out := make([]string, len(s.Labels))
		copy(out, s.Labels)
		return out
	}
}
