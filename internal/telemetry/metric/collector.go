package metric

import "github.com/prometheus/client_golang/prometheus"

// RecordSource is the part of the record store read on scrape.
type RecordSource interface {
	Len() int
	Generation() uint64
}

// RecordCollector exports record store size and generation.
type RecordCollector struct {
	src        RecordSource
	stored     *prometheus.Desc
	generation *prometheus.Desc
}

// NewRecordCollector creates a collector reading src on every scrape.
func NewRecordCollector(src RecordSource) *RecordCollector {
	return &RecordCollector{
		src: src,
		stored: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "records", "stored"),
			"Mutators held by the record store.", nil, nil),
		generation: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "records", "generation"),
			"Resets of the record store since start.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *RecordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.stored
	ch <- c.generation
}

// Collect implements prometheus.Collector.
func (c *RecordCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.stored, prometheus.GaugeValue, float64(c.src.Len()))
	ch <- prometheus.MustNewConstMetric(c.generation, prometheus.CounterValue, float64(c.src.Generation()))
}
