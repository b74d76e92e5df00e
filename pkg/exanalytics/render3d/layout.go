package render3d

import (
	"math"
	"unicode/utf8"
)

// Layout holds the scene geometry constants.
type Layout struct {
	// HMax is the height of the tallest bar.
	HMax float64
	// HMin is the smallest height any bar or line vertex may have.
	HMin float64
	// Spacing is the x distance between neighbouring items.
	Spacing float64
	// BarWidth is the width and depth of a bar.
	BarWidth float64
	// RingRadius is the radius of the sphere ring.
	RingRadius float64
	// SphereScale is the radius of the largest sphere.
	SphereScale float64
	// SphereMin is the smallest sphere radius.
	SphereMin float64
	// BarLabelMax and SphereLabelMax bound label length in runes.
	BarLabelMax    int
	SphereLabelMax int
}

// DefaultLayout returns the standard scene geometry.
func DefaultLayout() Layout {
	return Layout{
		HMax:           4,
		HMin:           0.1,
		Spacing:        1.5,
		BarWidth:       0.8,
		RingRadius:     3,
		SphereScale:    0.8,
		SphereMin:      0.2,
		BarLabelMax:    10,
		SphereLabelMax: 8,
	}
}

// withDefaults fills zero fields from DefaultLayout.
func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.HMax <= 0 {
		l.HMax = d.HMax
	}
	if l.HMin <= 0 {
		l.HMin = d.HMin
	}
	if l.HMin > l.HMax {
		l.HMin = l.HMax
	}
	if l.Spacing <= 0 {
		l.Spacing = d.Spacing
	}
	if l.BarWidth <= 0 {
		l.BarWidth = d.BarWidth
	}
	if l.RingRadius <= 0 {
		l.RingRadius = d.RingRadius
	}
	if l.SphereScale <= 0 {
		l.SphereScale = d.SphereScale
	}
	if l.SphereMin <= 0 {
		l.SphereMin = d.SphereMin
	}
	if l.BarLabelMax <= 0 {
		l.BarLabelMax = d.BarLabelMax
	}
	if l.SphereLabelMax <= 0 {
		l.SphereLabelMax = d.SphereLabelMax
	}
	return l
}

// MaxValue returns the largest value, never less than 1.
func MaxValue(values []float64) float64 {
	m := 1.0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

// Height scales v against max into (0, HMax].
func (l Layout) Height(v, max float64) float64 {
	return scaled(v, max, l.HMax, l.HMin)
}

// SphereRadius scales v against max into [SphereMin, SphereScale].
func (l Layout) SphereRadius(v, max float64) float64 {
	return scaled(v, max, l.SphereScale, l.SphereMin)
}

// X returns the x position of item i of n, centred on the origin.
func (l Layout) X(i, n int) float64 {
	return (float64(i) - float64(n)/2) * l.Spacing
}

// Ring returns the position of item i of n on the sphere ring.
func (l Layout) Ring(i, n int) Vec3 {
	angle := float64(i) / float64(n) * 2 * math.Pi
	return Vec3{X: math.Cos(angle) * l.RingRadius, Z: math.Sin(angle) * l.RingRadius}
}

func scaled(v, max, top, floor float64) float64 {
	if max <= 0 || math.IsNaN(v) || math.IsNaN(max) {
		return floor
	}
	h := v / max * top
	if math.IsNaN(h) || h < floor {
		return floor
	}
	if h > top {
		return top
	}
	return h
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
