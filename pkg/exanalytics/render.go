package exanalytics

import (
	"fmt"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/render2d"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/render3d"
)

// Dimension says which renderer produced a view.
type Dimension string

const (
	Dimension2D Dimension = "2d"
	Dimension3D Dimension = "3d"
)

// Placeholder texts for failures caught at the renderer boundary.
const (
	InvalidMessage     = "Invalid chart data"
	InvalidHint        = "The chart is missing its data or axis configuration"
	RenderErrorMessage = "Rendering error"
)

// View is what a chart view displays: a 2D chart, a 3D scene, or a
// placeholder explaining why neither could be drawn. Name is the stored
// chart name and Title the heading shown for it. Err is set for invalid
// data, unsupported types and render failures.
type View struct {
	ChartID     string              `json:"chartId"`
	Name        string              `json:"name,omitempty"`
	Title       string              `json:"title"`
	Type        models.ChartType    `json:"type"`
	Dimension   Dimension           `json:"dimension"`
	Chart       *render2d.Chart     `json:"chart,omitempty"`
	Scene       *render3d.Scene     `json:"scene,omitempty"`
	Placeholder *models.Placeholder `json:"placeholder,omitempty"`
	Err         error               `json:"-"`
}

// Drawable reports whether v holds a chart or scene rather than a placeholder.
func (v View) Drawable() bool {
	return v.Placeholder == nil && (v.Chart != nil || v.Scene != nil)
}

// WithError replaces v's content with a rendering error placeholder.
func (v View) WithError(component string, err error) View {
	re := &RenderError{ChartID: v.ChartID, Component: component, Err: err}
	v.Chart, v.Scene = nil, nil
	v.Placeholder = &models.Placeholder{
		Kind:    models.PlaceholderRenderError,
		Message: RenderErrorMessage,
		Hint:    err.Error(),
	}
	v.Err = re
	return v
}

// Validate checks that rec carries data and both axes.
func Validate(rec *models.ChartRecord) error {
	switch {
	case rec == nil:
		return fmt.Errorf("%w: no chart", ErrInvalidChartData)
	case rec.Data == nil:
		return fmt.Errorf("%w: chart %q has no data", ErrInvalidChartData, rec.ID)
	case rec.Config.XAxis == "" || rec.Config.YAxis == "":
		return fmt.Errorf("%w: chart %q has no axis configuration", ErrInvalidChartData, rec.ID)
	}
	return nil
}

// Render validates rec and hands it to the 2D or 3D renderer. Every failure
// ends up as a placeholder in the returned view; Render never panics.
func Render(rec *models.ChartRecord, opts Options) (view View) {
	if err := Validate(rec); err != nil {
		v := View{Placeholder: &models.Placeholder{
			Kind:    models.PlaceholderInvalid,
			Message: InvalidMessage,
			Hint:    InvalidHint,
		}, Err: err}
		if rec != nil {
			v.ChartID, v.Name, v.Title, v.Type = rec.ID, rec.Name, rec.DisplayName(), rec.Type
		}
		return v
	}

	view = View{
		ChartID:   rec.ID,
		Name:      rec.Name,
		Title:     rec.DisplayName(),
		Type:      rec.Type,
		Dimension: Dimension2D,
	}
	if opts.ShouldRender3D(rec.Type) {
		view.Dimension = Dimension3D
	}

	defer func() {
		if r := recover(); r != nil {
			view = view.WithError(string(view.Dimension), fmt.Errorf("panic: %v", r))
		}
	}()

	if view.Dimension == Dimension3D {
		res := render3d.Render(rec, opts.options3D())
		view.Scene, view.Placeholder = res.Scene, res.Placeholder
	} else {
		res := render2d.Render(rec, opts.options2D())
		view.Chart, view.Placeholder = res.Chart, res.Placeholder
	}

	if view.Placeholder != nil && view.Placeholder.Kind == models.PlaceholderUnsupported {
		view.Err = fmt.Errorf("%w: %s", ErrUnsupportedChartType, rec.Type)
	}
	return view
}
