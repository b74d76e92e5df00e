package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestRandomPicksFromPalette(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.True(t, Contains(Chart, Random.Pick(Chart)))
	}
	assert.Equal(t, drawing.ColorTransparent, Random.Pick(nil))
}

func TestSequenceCycles(t *testing.T) {
	var s Sequence
	p := Scene[:3]
	got := []drawing.Color{s.Pick(p), s.Pick(p), s.Pick(p), s.Pick(p)}
	assert.Equal(t, []drawing.Color{p[0], p[1], p[2], p[0]}, got)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "rgba(255,99,132,0.8)", CSS(Chart[0]))
	assert.Equal(t, "#ff6b6b", Hex(Scene[0]))
	assert.Equal(t, "#4ecdc4", Hex(LineAccent))
	assert.Equal(t, Scene[1], At(Scene, 9))
}

func TestParse(t *testing.T) {
	assert.True(t, Parse("").IsZero())
	assert.Equal(t, "#ff6b6b", Hex(Parse("#ff6b6b")))
}
