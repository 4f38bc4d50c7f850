package config

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

var tagPrefixPattern = regexp.MustCompile(`^[A-Za-z_-][A-Za-z0-9_-]*$`)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	if err := verifySnapshot(&cfg.Snapshot); err != nil {
		return err
	}
	if err := verifyWatch(&cfg.Watch); err != nil {
		return err
	}
	return verifyMetrics(&cfg.Metrics)
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		return fmt.Errorf("log.format %q is not json or text", cfg.Format)
	}
	return nil
}

func verifySnapshot(cfg *SnapshotSection) error {
	// Tags are class names; own tags are the prefix followed by digits.
	if !tagPrefixPattern.MatchString(cfg.TagPrefix) {
		return fmt.Errorf("snapshot.tag_prefix %q is not a valid class name prefix", cfg.TagPrefix)
	}
	if cfg.MaxDepth < 1 {
		return fmt.Errorf("snapshot.max_depth must be at least 1")
	}
	if cfg.MaxHooks < 1 {
		return fmt.Errorf("snapshot.max_hooks must be at least 1")
	}
	if cfg.HookNameCache < 0 {
		return fmt.Errorf("snapshot.hook_name_cache must not be negative")
	}
	return nil
}

func verifyWatch(cfg *WatchSection) error {
	if cfg.MinInterval < 0 {
		return fmt.Errorf("watch.min_interval must not be negative")
	}
	if cfg.Burst < 1 {
		return fmt.Errorf("watch.burst must be at least 1")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("watch.shutdown_timeout must be positive")
	}
	return nil
}

func verifyMetrics(cfg *MetricsSection) error {
	if !cfg.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("metrics.addr %q: %w", cfg.Addr, err)
	}
	return nil
}
