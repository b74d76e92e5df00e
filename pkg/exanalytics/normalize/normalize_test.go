package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

func record(t models.ChartType, x, y string, rows ...map[string]interface{}) *models.ChartRecord {
	data := make([]models.RawRow, 0, len(rows))
	for _, r := range rows {
		data = append(data, models.Row(r))
	}
	return &models.ChartRecord{
		ID:     "c1",
		Type:   t,
		Config: models.ChartConfig{XAxis: x, YAxis: y},
		Data:   &models.ChartData{ChartData: data},
	}
}

func TestNormalizeEmpty(t *testing.T) {
	s := Normalize(record(models.ChartBar, "x", "y"))
	assert.True(t, s.IsEmpty())
	assert.Equal(t, models.SeriesCategorical, s.Kind)

	s = Normalize(&models.ChartRecord{Type: models.ChartPie})
	assert.True(t, s.IsEmpty())
}

func TestNormalizePieBuckets(t *testing.T) {
	rec := record(models.ChartPie, "category", "",
		map[string]interface{}{"category": "A"},
		map[string]interface{}{"category": "A"},
		map[string]interface{}{"category": "B"},
	)

	s := Normalize(rec)
	require.Equal(t, models.SeriesBuckets, s.Kind)
	assert.Equal(t, []models.Bucket{{Category: "A", Count: 2}, {Category: "B", Count: 1}}, s.Buckets)
}

func TestNormalizePieSkipsFalsyCategories(t *testing.T) {
	rec := record(models.ChartPie, "category", "",
		map[string]interface{}{"category": "B"},
		map[string]interface{}{"category": ""},
		map[string]interface{}{"category": 0},
		map[string]interface{}{"other": 1},
		map[string]interface{}{"x": "A"},
		map[string]interface{}{"label": "B"},
		map[string]interface{}{"category": 3},
	)

	s := Normalize(rec)
	assert.Equal(t, []models.Bucket{
		{Category: "B", Count: 2},
		{Category: "A", Count: 1},
		{Category: "3", Count: 1},
	}, s.Buckets)

	total := 0
	for _, b := range s.Buckets {
		total += b.Count
	}
	assert.Equal(t, 4, total)
}

func TestNormalizeCategoricalFallbacks(t *testing.T) {
	rec := record(models.ChartBar, "x", "y",
		map[string]interface{}{"x": 1, "y": 5},
		map[string]interface{}{"x": 2, "y": "bad"},
	)

	s := Normalize(rec)
	assert.Equal(t, []string{"1", "2"}, s.Labels)
	assert.Equal(t, []float64{5, 1}, s.Values)
}

func TestNormalizeCategoricalLabelChain(t *testing.T) {
	tests := []struct {
		name  string
		row   map[string]interface{}
		label string
		value float64
	}{
		{"configured axis", map[string]interface{}{"Month": "Jan", "Sales": 10}, "Jan", 10},
		{"generic x and y", map[string]interface{}{"x": "Feb", "y": 7}, "Feb", 7},
		{"label key", map[string]interface{}{"label": "Mar"}, "Mar", 1},
		{"nothing", map[string]interface{}{"other": "z"}, "Unknown", 1},
		{"zero value kept", map[string]interface{}{"Month": "Apr", "Sales": 0}, "Apr", 0},
		{"numeric string", map[string]interface{}{"Month": "May", "Sales": "12"}, "May", 1},
		{"non-numeric axis falls to y", map[string]interface{}{"Month": "Jun", "Sales": "n/a", "y": 5}, "Jun", 5},
		{"axis number wins over y", map[string]interface{}{"Month": "Jul", "Sales": 3, "y": 9}, "Jul", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Normalize(record(models.ChartLine, "Month", "Sales", tt.row))
			require.Len(t, s.Labels, 1)
			assert.Equal(t, tt.label, s.Labels[0])
			assert.Equal(t, tt.value, s.Values[0])
		})
	}
}

func TestNormalizeScatter(t *testing.T) {
	rec := record(models.ChartScatter, "Age", "Score",
		map[string]interface{}{"Age": 30, "Score": 80},
		map[string]interface{}{"x": 2, "y": 3},
		map[string]interface{}{"Age": "old"},
	)

	s := Normalize(rec)
	assert.Equal(t, []models.Point{{X: 30, Y: 80}, {X: 2, Y: 3}, {X: 0, Y: 0}}, s.Points)
}

func TestNormalizePrefersPrerendered(t *testing.T) {
	pre := &models.NormalizedSeries{Kind: models.SeriesCategorical, Labels: []string{"a"}, Values: []float64{9}}
	rec := record(models.ChartBar, "x", "y", map[string]interface{}{"x": "b", "y": 1})
	rec.Data.ChartConfig = &models.PrerenderedPayload{Data: pre}

	s := Normalize(rec)
	assert.Equal(t, *pre, s)

	// The result is a copy.
	s.Values[0] = 0
	assert.Equal(t, 9.0, pre.Values[0])
}

func TestNormalizeIdempotent(t *testing.T) {
	rec := record(models.ChartBar, "Month", "Sales",
		map[string]interface{}{"Month": "Jan", "Sales": 10},
		map[string]interface{}{"Month": "Feb", "Sales": "n/a"},
	)

	first := Normalize(rec)
	second := Normalize(rec)
	assert.Equal(t, first, second)
	assert.Len(t, rec.Data.ChartData, 2)
}
