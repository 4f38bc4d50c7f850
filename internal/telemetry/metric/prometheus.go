package metric

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "snaptree"

// Build results used as the "result" label.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	BuildsTotal   *prometheus.CounterVec
	BuildDuration prometheus.Histogram
	TreeNodes     prometheus.Histogram

	NodesVisited       prometheus.Counter
	NodesAccepted      prometheus.Counter
	NodesExcluded      prometheus.Counter
	CyclesSkipped      prometheus.Counter
	TagsApplied        prometheus.Counter
	ExtractionFailures *prometheus.CounterVec
}

// BuildSample is what one build reports.
type BuildSample struct {
	Duration time.Duration
	Err      error

	Visited  int
	Accepted int
	Excluded int
	Cycles   int
	Tagged   int
	// Failures counts recovered extraction failures by kind.
	Failures map[string]int
}

// NewRegistry creates a registry with every metric registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		registry: reg,
		BuildsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Snapshot builds by result.",
		}, []string{"result"}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time spent building one snapshot tree.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		TreeNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tree_nodes",
			Help:      "Snapshot nodes per built tree.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		NodesVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_visited_total",
			Help:      "Live nodes visited.",
		}),
		NodesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_accepted_total",
			Help:      "Live nodes turned into snapshot nodes.",
		}),
		NodesExcluded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_excluded_total",
			Help:      "Live nodes skipped by the name filters.",
		}),
		CyclesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_skipped_total",
			Help:      "Links to already visited nodes that were not followed.",
		}),
		TagsApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tags_applied_total",
			Help:      "Tags written to rendered elements.",
		}),
		ExtractionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_failures_total",
			Help:      "Recovered extraction failures by kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		r.BuildsTotal, r.BuildDuration, r.TreeNodes,
		r.NodesVisited, r.NodesAccepted, r.NodesExcluded,
		r.CyclesSkipped, r.TagsApplied, r.ExtractionFailures,
	)
	return r
}

// ObserveBuild records one build.
func (r *Registry) ObserveBuild(s BuildSample) {
	if r == nil {
		return
	}
	result := ResultOK
	if s.Err != nil {
		result = ResultError
	}
	r.BuildsTotal.WithLabelValues(result).Inc()
	r.BuildDuration.Observe(s.Duration.Seconds())
	if s.Err != nil {
		return
	}
	r.TreeNodes.Observe(float64(s.Accepted))
	r.NodesVisited.Add(float64(s.Visited))
	r.NodesAccepted.Add(float64(s.Accepted))
	r.NodesExcluded.Add(float64(s.Excluded))
	r.CyclesSkipped.Add(float64(s.Cycles))
	r.TagsApplied.Add(float64(s.Tagged))
	for kind, n := range s.Failures {
		r.ExtractionFailures.WithLabelValues(kind).Add(float64(n))
	}
}

// MustRegister adds extra collectors to the registry.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	r.registry.MustRegister(cs...)
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

var (
	global     *Registry
	globalOnce sync.Once
)

// Global returns the process-wide registry.
func Global() *Registry {
	globalOnce.Do(func() { global = NewRegistry() })
	return global
}

// Handler serves the process-wide registry.
func Handler() http.Handler {
	return Global().Handler()
}
