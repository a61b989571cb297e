// Package metrics exports the single histogram the core is allowed to
// observe (§6): per-frame render wall time. Not part of the teacher's own
// dependency set — avatar29A-midgard-ro is a desktop client with no metrics
// exporter — but github.com/prometheus/client_golang appears in the pack
// (iluha78-FD, equinor-oneseismic-api, brawer-wikidata-qrank) as the
// ecosystem's default instrumentation library, so it is wired in here
// rather than hand-rolling a counter.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is a private registry rather than the global default, so that
// multiple server instances in the same test binary don't collide on
// metric registration.
type Registry struct {
	reg           *prometheus.Registry
	frameRenderer prometheus.Histogram
}

// New creates a Registry with the frame-render-time histogram registered.
func New() *Registry {
	reg := prometheus.NewRegistry()
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "voxelmon_frame_render_seconds",
		Help:    "Wall-clock time to render a single frame.",
		Buckets: []float64{0, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})
	reg.MustRegister(h)
	return &Registry{reg: reg, frameRenderer: h}
}

// ObserveFrameRender records one frame's render wall time.
func (r *Registry) ObserveFrameRender(d time.Duration) {
	r.frameRenderer.Observe(d.Seconds())
}

// Handler returns the /metrics HTTP handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
