// Package metrics instruments calculation runs with Prometheus collectors.
// Unlike the remote-query Prometheus client this module's corpus otherwise
// reaches for, this package never opens a network listener or queries a
// remote server — spec.md's core is a pure, synchronous, no-I/O library
// (spec.md §1 Non-goals, §5), so metrics are gathered in-process and
// written to a plain io.Writer (a log file, a CLI's stdout) on request via
// Gather.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Registry bundles the counters and histograms one process accumulates
// across calculation runs (spec.md §5: calculations themselves own no
// shared mutable state, but the host process may still want aggregate
// observability across many of them).
type Registry struct {
	registry *prometheus.Registry

	Calculations       prometheus.Counter
	CalculationSeconds prometheus.Histogram
	SamplerComposition prometheus.Histogram
	PathSamplerStates  prometheus.Histogram
	NumericalWarnings  prometheus.Counter
}

// NewRegistry builds a fresh, independent Registry. Hosts typically keep
// one for the lifetime of the process. Calculate does not take a Registry;
// the caller records each run's observations itself, as cmd/expedicalc's
// run command does.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,
		Calculations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "expedicalc",
			Name:      "calculations_total",
			Help:      "Total number of expedition risk calculations run.",
		}),
		CalculationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "expedicalc",
			Name:      "calculation_duration_seconds",
			Help:      "Wall-clock duration of a single calculation run.",
			Buckets:   prometheus.DefBuckets,
		}),
		SamplerComposition: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "expedicalc",
			Name:      "sampler_compositions_retained",
			Help:      "Number of sector compositions SectorSampler retains after pruning.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		PathSamplerStates: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "expedicalc",
			Name:      "pathsampler_dp_states",
			Help:      "Number of (sector, remaining-damage) states PathSampler's DP table covers.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}),
		NumericalWarnings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "expedicalc",
			Name:      "numerical_warnings_total",
			Help:      "PMFs whose mass deviated from 1 by more than the configured tolerance.",
		}),
	}
}

// Gather renders every collected metric in the Prometheus text exposition
// format to w — no HTTP listener, no scrape endpoint, just a point-in-time
// dump a CLI or log file can consume.
func (r *Registry) Gather(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
