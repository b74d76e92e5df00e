package render3d

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

func sceneRecord(t models.ChartType, rows ...map[string]interface{}) *models.ChartRecord {
	data := make([]models.RawRow, 0, len(rows))
	for _, r := range rows {
		data = append(data, models.Row(r))
	}
	return &models.ChartRecord{
		ID:     "c3",
		Type:   t,
		Config: models.ChartConfig{XAxis: "Region", YAxis: "Revenue"},
		Data:   &models.ChartData{ChartData: data},
	}
}

func TestRenderSingleZeroBarUsesFloor(t *testing.T) {
	res := Render(sceneRecord(models.ChartColumn3D, map[string]interface{}{"Region": "North", "Revenue": 0}), DefaultOptions())
	require.NotNil(t, res.Scene)
	require.Len(t, res.Scene.Primitives, 1)

	bar := res.Scene.Primitives[0]
	assert.Equal(t, ShapeBox, bar.Shape)
	assert.InDelta(t, 0.1, bar.Size.Y, 1e-9)
	assert.InDelta(t, 0.05, bar.Offset.Y, 1e-9)
	assert.Equal(t, "North", bar.Label.Content)
}

func TestHeightInvariant(t *testing.T) {
	l := DefaultLayout()
	datasets := [][]float64{
		{0},
		{0, 0, 0},
		{5},
		{-3, 2, 100},
		{0.5, 0.25},
		{1e9, 1},
	}
	for _, values := range datasets {
		max := MaxValue(values)
		for _, v := range values {
			h := l.Height(v, max)
			assert.Greater(t, h, 0.0, "value %v of %v", v, values)
			assert.LessOrEqual(t, h, l.HMax, "value %v of %v", v, values)
		}
	}
	assert.Equal(t, l.HMin, l.Height(math.NaN(), 1))
}

func TestRenderBarsLayout(t *testing.T) {
	res := Render(sceneRecord(models.ChartBar3D,
		map[string]interface{}{"Region": "Northwestern Territory", "Revenue": 50},
		map[string]interface{}{"Region": "South", "Revenue": 100},
	), DefaultOptions())
	require.NotNil(t, res.Scene)
	p := res.Scene.Primitives
	require.Len(t, p, 2)

	assert.Equal(t, -1.5, p[0].Position.X)
	assert.Equal(t, 0.0, p[1].Position.X)
	assert.InDelta(t, 2.0, p[0].Size.Y, 1e-9)
	assert.InDelta(t, 4.0, p[1].Size.Y, 1e-9)
	assert.Equal(t, "Northwest", p[0].Label.Content[:9])
	assert.Len(t, []rune(p[0].Label.Content), 10)
	assert.Equal(t, "#ff6b6b", p[0].Color)
	assert.Equal(t, "#4ecdc4", p[1].Color)
}

func TestRenderLine(t *testing.T) {
	res := Render(sceneRecord(models.ChartLine3D,
		map[string]interface{}{"Region": "A", "Revenue": 2},
		map[string]interface{}{"Region": "B", "Revenue": 4},
		map[string]interface{}{"Region": "C", "Revenue": 0},
	), DefaultOptions())
	require.NotNil(t, res.Scene)
	require.Len(t, res.Scene.Primitives, 1)

	line := res.Scene.Primitives[0]
	assert.Equal(t, ShapePolyline, line.Shape)
	assert.Equal(t, "#4ecdc4", line.Color)
	assert.Equal(t, []Vec3{{X: -2.25, Y: 2}, {X: -0.75, Y: 4}, {X: 0.75, Y: 0.1}}, line.Points)
}

func TestRenderPieAsSpheres(t *testing.T) {
	res := Render(sceneRecord(models.ChartPie,
		map[string]interface{}{"Region": "East"},
		map[string]interface{}{"Region": "East"},
		map[string]interface{}{"Region": "West"},
		map[string]interface{}{"Region": "Central Highlands"},
	), DefaultOptions())
	require.NotNil(t, res.Scene)
	p := res.Scene.Primitives
	require.Len(t, p, 3)

	assert.InDelta(t, 3, p[0].Position.X, 1e-9)
	assert.InDelta(t, 0, p[0].Position.Z, 1e-9)
	assert.InDelta(t, 0.8, p[0].Radius, 1e-9)
	assert.InDelta(t, 0.4, p[1].Radius, 1e-9)
	assert.Equal(t, "Central ", p[2].Label.Content)
	assert.InDelta(t, -0.9, p[1].Label.Position.Y, 1e-9)
}

func TestRenderPlaceholders(t *testing.T) {
	res := Render(sceneRecord(models.ChartColumn3D), DefaultOptions())
	require.NotNil(t, res.Placeholder)
	assert.Equal(t, "No data available for 3D chart", res.Placeholder.Message)

	res = Render(sceneRecord("HEATMAP", map[string]interface{}{"Region": "A", "Revenue": 1}), DefaultOptions())
	require.NotNil(t, res.Placeholder)
	assert.Equal(t, models.PlaceholderUnsupported, res.Placeholder.Kind)
	assert.Equal(t, "Unsupported 3D chart type: HEATMAP", res.Placeholder.Message)

	res = Render(sceneRecord(models.ChartScatter, map[string]interface{}{"Region": 1, "Revenue": 1}), DefaultOptions())
	require.NotNil(t, res.Placeholder)
	assert.Equal(t, "Unsupported 3D chart type: SCATTER", res.Placeholder.Message)
}

func TestSceneFrame(t *testing.T) {
	rec := sceneRecord(models.ChartColumn3D, map[string]interface{}{"Region": "A", "Revenue": 1})
	rec.Config.Title = "Sales"
	res := Render(rec, DefaultOptions())
	require.NotNil(t, res.Scene)
	sc := res.Scene

	assert.Equal(t, Vec3{X: 8, Y: 6, Z: 8}, sc.Camera.Position)
	assert.Equal(t, 50.0, sc.Camera.FOV)
	assert.Equal(t, 3.0, sc.Orbit.MinDistance)
	assert.Equal(t, 20.0, sc.Orbit.MaxDistance)
	assert.Equal(t, Vec3{Y: -1.5}, sc.Grid.Position)
	require.NotNil(t, sc.Title)
	assert.Equal(t, Vec3{Y: 5}, sc.Title.Position)
	assert.Equal(t, "Region", sc.XLabel.Content)
	assert.InDelta(t, math.Pi/2, sc.YLabel.Rotation.Z, 1e-9)
	assert.Len(t, sc.Lights, 4)
}

func TestOscillationIsPureAndBounded(t *testing.T) {
	for _, o := range []Oscillation{barMotion, lineMotion, sphereMotion} {
		for _, elapsed := range []float64{0, 0.5, 3, 1000.25} {
			r := o.Rotation(elapsed)
			assert.Equal(t, r, o.Rotation(elapsed))
			assert.LessOrEqual(t, math.Abs(r.X), o.Bound())
			assert.LessOrEqual(t, math.Abs(r.Y), o.Bound())
			assert.LessOrEqual(t, math.Abs(r.Z), o.Bound())
		}
	}

	assert.InDelta(t, 0.1*math.Sin(0.5*2), barMotion.Rotation(2).Y, 1e-12)
	assert.InDelta(t, 0.1*math.Cos(0.5*2), sphereMotion.Rotation(2).Z, 1e-12)
}

func TestLayoutWithDefaults(t *testing.T) {
	l := Layout{HMax: 10}.withDefaults()
	assert.Equal(t, 10.0, l.HMax)
	assert.Equal(t, 0.1, l.HMin)
	assert.Equal(t, 1.5, l.Spacing)
}

func TestRenderStoredPayload(t *testing.T) {
	decode := func(payload string) *models.ChartRecord {
		var rec models.ChartRecord
		raw := `{"id":"c3","type":"COLUMN_3D","config":{"xAxis":"Region","yAxis":"Revenue"},
			"data":{"chartData":[],"chartConfig":{"data":` + payload + `}}}`
		require.NoError(t, json.Unmarshal([]byte(raw), &rec))
		return &rec
	}

	res := Render(decode(`{"labels":["North","South"],"datasets":[{"data":[4,2]}]}`), DefaultOptions())
	require.NotNil(t, res.Scene)
	require.Len(t, res.Scene.Primitives, 2)
	assert.Equal(t, "North", res.Scene.Primitives[0].Label.Content)
	assert.InDelta(t, 4.0, res.Scene.Primitives[0].Size.Y, 1e-9)

	res = Render(decode(`{"labels":["North","South"],"datasets":[]}`), DefaultOptions())
	assert.Nil(t, res.Scene)
	require.NotNil(t, res.Placeholder)
	assert.Equal(t, models.PlaceholderNoData, res.Placeholder.Kind)
}
