package config

import (
	"time"

	"github.com/yndnr/snaptree-go/internal/core/filter"
)

// Config is the root configuration.
type Config struct {
	Log      LogSection      `koanf:"log"`
	Snapshot SnapshotSection `koanf:"snapshot"`
	Filters  FiltersSection  `koanf:"filters"`
	Watch    WatchSection    `koanf:"watch"`
	Metrics  MetricsSection  `koanf:"metrics"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SnapshotSection configures the builder.
type SnapshotSection struct {
	// TagPrefix starts every tag written to rendered elements.
	TagPrefix string `koanf:"tag_prefix"`
	// MaxDepth caps nesting of copied props, state and context.
	MaxDepth int `koanf:"max_depth"`
	// MaxHooks caps the chained state records walked per unit.
	MaxHooks int `koanf:"max_hooks"`
	// HookNameCache is the number of unit sources whose hook names are
	// cached. 0 disables the cache.
	HookNameCache int `koanf:"hook_name_cache"`
}

// FiltersSection configures the framework exclusion sets. Nil lists keep
// the built-in defaults; empty lists exclude nothing.
type FiltersSection struct {
	Disabled bool     `koanf:"disabled"`
	NextJS   []string `koanf:"next_js"`
	Remix    []string `koanf:"remix"`
}

// Filters builds the exclusion sets.
func (f FiltersSection) Filters() filter.Filters {
	if f.Disabled {
		return filter.None()
	}
	out := filter.Default()
	if f.NextJS != nil {
		out.NextJS = filter.NewSet(f.NextJS...)
	}
	if f.Remix != nil {
		out.Remix = filter.NewSet(f.Remix...)
	}
	return out
}

// WatchSection configures the watch command.
type WatchSection struct {
	// MinInterval is the least time between two rebuilds.
	MinInterval time.Duration `koanf:"min_interval"`
	// Burst is the number of rebuilds allowed back to back.
	Burst int `koanf:"burst"`
	// ShutdownTimeout bounds the time spent in shutdown hooks.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// MetricsSection configures the metrics endpoint of the watch command.
type MetricsSection struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}
