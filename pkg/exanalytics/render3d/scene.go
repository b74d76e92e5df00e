// Package render3d lays chart data out as a small 3D scene: columns, a line
// strip or a ring of spheres, plus labels, lights, a grid and a camera.
package render3d

import "github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"

// Vec3 is a point or direction in scene units.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LightKind names a light source type.
type LightKind string

const (
	LightAmbient     LightKind = "ambient"
	LightPoint       LightKind = "point"
	LightDirectional LightKind = "directional"
)

// Light is a scene light.
type Light struct {
	Kind      LightKind `json:"kind"`
	Position  *Vec3     `json:"position,omitempty"`
	Intensity float64   `json:"intensity"`
}

// Camera is the initial viewpoint.
type Camera struct {
	Position Vec3    `json:"position"`
	FOV      float64 `json:"fov"`
}

// Orbit configures interactive orbit controls.
type Orbit struct {
	EnablePan    bool    `json:"enablePan"`
	EnableZoom   bool    `json:"enableZoom"`
	EnableRotate bool    `json:"enableRotate"`
	MinDistance  float64 `json:"minDistance"`
	MaxDistance  float64 `json:"maxDistance"`
}

// Grid is the ground grid helper.
type Grid struct {
	Size      float64 `json:"size"`
	Divisions int     `json:"divisions"`
	Position  Vec3    `json:"position"`
}

// Text is a text label placed in the scene.
type Text struct {
	Content  string  `json:"content"`
	Position Vec3    `json:"position"`
	Rotation Vec3    `json:"rotation"`
	FontSize float64 `json:"fontSize"`
	Color    string  `json:"color"`
	Bold     bool    `json:"bold,omitempty"`
}

// Shape names the geometry of a primitive.
type Shape string

const (
	ShapeBox      Shape = "box"
	ShapePolyline Shape = "polyline"
	ShapeSphere   Shape = "sphere"
)

// Primitive is one visual element. Position is the group origin; the
// geometry fields used depend on Shape.
type Primitive struct {
	Shape    Shape   `json:"shape"`
	Position Vec3    `json:"position"`
	Color    string  `json:"color"`
	Label    *Text   `json:"label,omitempty"`
	Value    float64 `json:"value"`
	// Box: Size is width, height and depth; Offset lifts the mesh so it
	// stands on the group origin.
	Size   Vec3 `json:"size"`
	Offset Vec3 `json:"offset"`
	// Sphere radius.
	Radius float64 `json:"radius,omitempty"`
	// Polyline vertices, in input order.
	Points []Vec3 `json:"points,omitempty"`
	// LineWidth of a polyline.
	LineWidth float64     `json:"lineWidth,omitempty"`
	Motion    Oscillation `json:"motion"`
}

// Scene is a complete 3D chart description.
type Scene struct {
	Type       models.ChartType `json:"type"`
	Height     int              `json:"height"`
	Camera     Camera           `json:"camera"`
	Orbit      Orbit            `json:"orbit"`
	Lights     []Light          `json:"lights"`
	Grid       Grid             `json:"grid"`
	Title      *Text            `json:"title,omitempty"`
	XLabel     Text             `json:"xLabel"`
	YLabel     Text             `json:"yLabel"`
	Primitives []Primitive      `json:"primitives"`
}

// Result is either a scene or the placeholder shown in its place.
type Result struct {
	Scene       *Scene              `json:"scene,omitempty"`
	Placeholder *models.Placeholder `json:"placeholder,omitempty"`
}
