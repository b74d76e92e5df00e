package lifecycle

import (
	"context"
	"errors"
	"sync"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

// ErrStale indicates a load finished after the viewer was unmounted or a
// newer load started; its result was discarded.
var ErrStale = errors.New("stale chart response")

// Viewer is a mounted chart view. Loads that complete after Unmount, or
// after a newer Load began, are discarded.
type Viewer struct {
	api  ChartAPI
	opts exanalytics.Options

	mu      sync.Mutex
	gen     uint64
	mounted bool
	chart   *models.ChartRecord
	view    exanalytics.View
}

// NewViewer creates an unmounted viewer.
func NewViewer(api ChartAPI, opts exanalytics.Options) *Viewer {
	return &Viewer{api: api, opts: opts}
}

// Mount makes the viewer accept load results.
func (v *Viewer) Mount() {
	v.mu.Lock()
	v.mounted = true
	v.mu.Unlock()
}

// Unmount invalidates pending loads.
func (v *Viewer) Unmount() {
	v.mu.Lock()
	v.mounted = false
	v.gen++
	v.mu.Unlock()
}

// Load fetches chart chartID and renders it. It returns ErrStale when the
// result arrived too late to be shown.
func (v *Viewer) Load(ctx context.Context, chartID string) (exanalytics.View, error) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	rec, err := v.api.GetChart(ctx, chartID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.mounted || gen != v.gen {
		return exanalytics.View{}, ErrStale
	}
	if err != nil {
		return v.view, err
	}
	v.setLocked(rec)
	return v.view, nil
}

// Show displays rec directly, for charts that did not come from the API.
func (v *Viewer) Show(rec *models.ChartRecord) exanalytics.View {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.setLocked(rec)
	return v.view
}

func (v *Viewer) setLocked(rec *models.ChartRecord) {
	v.chart = rec
	v.view = exanalytics.Render(rec, v.opts)
}

// Chart returns the displayed chart record, or nil.
func (v *Viewer) Chart() *models.ChartRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.chart
}

// Render returns the current view.
func (v *Viewer) Render() exanalytics.View {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view
}
