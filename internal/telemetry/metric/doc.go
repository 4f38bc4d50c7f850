// Package metric provides Prometheus metrics for snaptree.
//
//   - prometheus.go: build counters and histograms, HTTP handler
//   - collector.go: collector reading record store size on scrape
//
// Each Registry owns a prometheus.Registry with the Go runtime and process
// collectors, so tests can create isolated registries. Global returns the
// process-wide one served by the watch command at /metrics.
package metric
