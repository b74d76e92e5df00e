package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrerenderedPayloadUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want *NormalizedSeries
	}{
		{
			name: "chart library bars",
			json: `{"data":{"labels":["Jan","Feb"],"datasets":[{"label":"Sales","data":[10,20]}]}}`,
			want: &NormalizedSeries{Kind: SeriesCategorical, Labels: []string{"Jan", "Feb"}, Values: []float64{10, 20}},
		},
		{
			name: "numeric labels",
			json: `{"data":{"labels":[2021,2022],"datasets":[{"data":[1,null]}]}}`,
			want: &NormalizedSeries{Kind: SeriesCategorical, Labels: []string{"2021", "2022"}, Values: []float64{1, 0}},
		},
		{
			name: "chart library points",
			json: `{"data":{"datasets":[{"data":[{"x":1,"y":2},{"x":3,"y":4}]}]}}`,
			want: &NormalizedSeries{Kind: SeriesPoints, Points: []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}},
		},
		{
			name: "labels without datasets",
			json: `{"data":{"labels":["Jan","Feb"],"datasets":[]}}`,
			want: &NormalizedSeries{Kind: SeriesCategorical, Labels: []string{"Jan", "Feb"}},
		},
		{
			name: "normalized form",
			json: `{"data":{"kind":"buckets","buckets":[{"category":"A","count":2}]}}`,
			want: &NormalizedSeries{Kind: SeriesBuckets, Buckets: []Bucket{{Category: "A", Count: 2}}},
		},
		{
			name: "no data",
			json: `{"data":null}`,
		},
		{
			name: "empty",
			json: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PrerenderedPayload
			require.NoError(t, json.Unmarshal([]byte(tt.json), &p))
			assert.Equal(t, tt.want, p.Data)
		})
	}
}

func TestPrerenderedPayloadRoundTrip(t *testing.T) {
	in := PrerenderedPayload{Data: &NormalizedSeries{
		Kind: SeriesCategorical, Labels: []string{"a"}, Values: []float64{3},
	}}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out PrerenderedPayload
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestSeriesHasData(t *testing.T) {
	tests := []struct {
		name string
		s    NormalizedSeries
		want bool
	}{
		{"empty", NormalizedSeries{Kind: SeriesCategorical}, false},
		{"labels only", NormalizedSeries{Kind: SeriesCategorical, Labels: []string{"a", "b"}}, false},
		{"mismatched", NormalizedSeries{Kind: SeriesCategorical, Labels: []string{"a", "b"}, Values: []float64{1}}, false},
		{"categorical", NormalizedSeries{Kind: SeriesCategorical, Labels: []string{"a"}, Values: []float64{1}}, true},
		{"points", NormalizedSeries{Kind: SeriesPoints, Points: []Point{{X: 1}}}, true},
		{"buckets", NormalizedSeries{Kind: SeriesBuckets, Buckets: []Bucket{{Category: "a", Count: 1}}}, true},
		{"no buckets", NormalizedSeries{Kind: SeriesBuckets}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.HasData())
		})
	}
}
