package config

import (
	"time"

	"github.com/yndnr/snaptree-go/internal/core/extract"
	"github.com/yndnr/snaptree-go/internal/core/hooknames"
)

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultTagPrefix = "fromLinkFiber"

	DefaultMinInterval     = 250 * time.Millisecond
	DefaultBurst           = 1
	DefaultShutdownTimeout = 5 * time.Second

	DefaultMetricsAddr = "127.0.0.1:9464"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Snapshot: SnapshotSection{
			TagPrefix:     DefaultTagPrefix,
			MaxDepth:      extract.DefaultMaxDepth,
			MaxHooks:      extract.DefaultMaxHooks,
			HookNameCache: hooknames.DefaultCacheSize,
		},
		Watch: WatchSection{
			MinInterval:     DefaultMinInterval,
			Burst:           DefaultBurst,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Metrics: MetricsSection{
			Addr: DefaultMetricsAddr,
		},
	}
}
