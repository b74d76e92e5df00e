package render3d

import "math"

// Wave is a sinusoid a·f(ω·t) where f is sin, or cos when Cos is set.
type Wave struct {
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"`
	Cos       bool    `json:"cos,omitempty"`
}

// At evaluates the wave at t seconds.
func (w Wave) At(t float64) float64 {
	if w.Amplitude == 0 {
		return 0
	}
	if w.Cos {
		return w.Amplitude * math.Cos(w.Frequency*t)
	}
	return w.Amplitude * math.Sin(w.Frequency*t)
}

// Oscillation is the idle rotation of a primitive, one wave per axis.
type Oscillation struct {
	X Wave `json:"x"`
	Y Wave `json:"y"`
	Z Wave `json:"z"`
}

// Rotation returns the Euler rotation after elapsed seconds. It depends
// only on elapsed, never on frame history.
func (o Oscillation) Rotation(elapsed float64) Vec3 {
	return Vec3{X: o.X.At(elapsed), Y: o.Y.At(elapsed), Z: o.Z.At(elapsed)}
}

// Bound returns the largest absolute rotation on any axis.
func (o Oscillation) Bound() float64 {
	return math.Max(math.Abs(o.X.Amplitude), math.Max(math.Abs(o.Y.Amplitude), math.Abs(o.Z.Amplitude)))
}

var (
	barMotion    = Oscillation{Y: Wave{Amplitude: 0.1, Frequency: 0.5}}
	lineMotion   = Oscillation{Y: Wave{Amplitude: 0.05, Frequency: 0.3}}
	sphereMotion = Oscillation{
		X: Wave{Amplitude: 0.1, Frequency: 0.7},
		Z: Wave{Amplitude: 0.1, Frequency: 0.5, Cos: true},
	}
)
