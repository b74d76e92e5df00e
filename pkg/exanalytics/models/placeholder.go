package models

// PlaceholderKind classifies why a chart could not be drawn.
type PlaceholderKind string

const (
	PlaceholderNoData      PlaceholderKind = "no_data"
	PlaceholderUnsupported PlaceholderKind = "unsupported"
	PlaceholderInvalid     PlaceholderKind = "invalid"
	PlaceholderRenderError PlaceholderKind = "render_error"
)

// Placeholder is the inline message shown instead of a chart.
type Placeholder struct {
	Kind    PlaceholderKind `json:"kind"`
	Message string          `json:"message"`
	Hint    string          `json:"hint,omitempty"`
}
