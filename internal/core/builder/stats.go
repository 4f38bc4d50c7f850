package builder

import (
	"time"

	"github.com/yndnr/snaptree-go/internal/telemetry/metric"
)

// Failure kinds reported in Stats.Failures.
const (
	FailureDirectState = "direct_state"
	FailureHooks       = "hooks"
	FailurePanic       = "panic"
)

// Stats describes one build.
type Stats struct {
	// Visited counts distinct live nodes reached.
	Visited int
	// Accepted counts snapshot nodes created, the synthetic root excluded.
	Accepted int
	// Excluded counts nodes skipped by the framework filters.
	Excluded int
	// Cycles counts links to nodes already visited.
	Cycles int
	// Tagged counts rendered elements that received a tag.
	Tagged int
	// Failures counts recovered extraction failures by kind.
	Failures map[string]int
}

func (s *Stats) fail(kind string) {
	if s.Failures == nil {
		s.Failures = make(map[string]int)
	}
	s.Failures[kind]++
}

// FailureCount returns the number of recovered failures of all kinds.
func (s Stats) FailureCount() int {
	n := 0
	for _, c := range s.Failures {
		n += c
	}
	return n
}

func (s Stats) sample(d time.Duration, err error) metric.BuildSample {
	return metric.BuildSample{
		Duration: d,
		Err:      err,
		Visited:  s.Visited,
		Accepted: s.Accepted,
		Excluded: s.Excluded,
		Cycles:   s.Cycles,
		Tagged:   s.Tagged,
		Failures: s.Failures,
	}
}
