// Package palette holds the chart color palettes and the strategies used to
// pick from them.
package palette

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart is the 2D palette. Every entry is 80% opaque.
var Chart = []drawing.Color{
	{R: 255, G: 99, B: 132, A: 204},
	{R: 54, G: 162, B: 235, A: 204},
	{R: 255, G: 205, B: 86, A: 204},
	{R: 75, G: 192, B: 192, A: 204},
	{R: 153, G: 102, B: 255, A: 204},
	{R: 255, G: 159, B: 64, A: 204},
	{R: 199, G: 199, B: 199, A: 204},
	{R: 83, G: 102, B: 255, A: 204},
	{R: 255, G: 99, B: 255, A: 204},
	{R: 99, G: 255, B: 132, A: 204},
}

// Scene is the 3D palette, indexed by item position modulo its length.
var Scene = []drawing.Color{
	drawing.ColorFromHex("ff6b6b"),
	drawing.ColorFromHex("4ecdc4"),
	drawing.ColorFromHex("45b7d1"),
	drawing.ColorFromHex("96ceb4"),
	drawing.ColorFromHex("feca57"),
	drawing.ColorFromHex("ff9ff3"),
	drawing.ColorFromHex("a8e6cf"),
	drawing.ColorFromHex("ffd93d"),
}

// LineAccent is the single color of the 3D polyline.
var LineAccent = drawing.ColorFromHex("4ecdc4")

// Picker chooses one color from a palette.
type Picker interface {
	Pick(p []drawing.Color) drawing.Color
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(p []drawing.Color) drawing.Color

// Pick calls f.
func (f PickerFunc) Pick(p []drawing.Color) drawing.Color { return f(p) }

// Random picks uniformly at random. Repeats are allowed.
var Random Picker = PickerFunc(func(p []drawing.Color) drawing.Color {
	if len(p) == 0 {
		return drawing.ColorTransparent
	}
	return p[rand.IntN(len(p))]
})

// Sequence cycles through the palette in order. Safe for concurrent use.
type Sequence struct {
	next atomic.Uint64
}

// Pick returns the next palette entry.
func (s *Sequence) Pick(p []drawing.Color) drawing.Color {
	if len(p) == 0 {
		return drawing.ColorTransparent
	}
	i := s.next.Add(1) - 1
	return p[i%uint64(len(p))]
}

// At returns the entry at i, wrapping around the palette.
func At(p []drawing.Color, i int) drawing.Color {
	if len(p) == 0 {
		return drawing.ColorTransparent
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// Contains reports whether c is an entry of p.
func Contains(p []drawing.Color, c drawing.Color) bool {
	for _, e := range p {
		if e.Equals(c) {
			return true
		}
	}
	return false
}

// CSS formats c as a css rgba() function, e.g. "rgba(255,99,132,0.8)".
func CSS(c drawing.Color) string {
	return c.String()
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Parse reads a css color (hex, rgb(), rgba() or a known name).
// Empty input yields the zero color.
func Parse(s string) drawing.Color {
	if s == "" {
		return drawing.Color{}
	}
	return drawing.ParseColor(s)
}
