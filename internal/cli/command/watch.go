package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/snaptree-go/internal/cli/output"
	"github.com/yndnr/snaptree-go/internal/config"
	"github.com/yndnr/snaptree-go/internal/core/builder"
	"github.com/yndnr/snaptree-go/internal/fixture"
	"github.com/yndnr/snaptree-go/internal/infra/confloader"
	"github.com/yndnr/snaptree-go/internal/infra/shutdown"
	"github.com/yndnr/snaptree-go/internal/storage/record"
	"github.com/yndnr/snaptree-go/internal/telemetry/logger"
	"github.com/yndnr/snaptree-go/internal/telemetry/metric"
)

// WatchCommand returns the watch command.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Rebuild the snapshot whenever the fixture or configuration changes",
		ArgsUsage: "[FIXTURE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "fixture",
				Aliases: []string{"f"},
				Usage:   "Live tree document (YAML or JSON)",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Serve Prometheus metrics (overrides metrics.enabled)",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Metrics listen address (overrides metrics.addr)",
			},
		},
		Action: runWatch,
	}
}

// watchSession owns the state of one watch command. Rebuilds run on a
// single goroutine; the record store is reset before each one.
type watchSession struct {
	fixturePath string
	configPath  string
	out         io.Writer
	format      output.Formatter
	log         logger.Logger
	store       *record.Store
	metrics     *metric.Registry

	mu      sync.Mutex
	builder *builder.Builder
	limiter *rate.Limiter

	events chan string
}

func newWatchSession(cfg *config.Config, fixturePath, configPath string, out io.Writer, f output.Formatter, log logger.Logger) (*watchSession, error) {
	s := &watchSession{
		fixturePath: fixturePath,
		configPath:  configPath,
		out:         out,
		format:      f,
		log:         log,
		store:       record.New(),
		metrics:     metric.NewRegistry(),
		events:      make(chan string, 1),
	}
	s.metrics.MustRegister(metric.NewRecordCollector(s.store))
	if err := s.apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// apply switches to cfg for the following rebuilds.
func (s *watchSession) apply(cfg *config.Config) error {
	b, err := NewBuilder(cfg, s.store, s.log, s.metrics)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.builder = b
	s.limiter = rate.NewLimiter(rate.Every(cfg.Watch.MinInterval), cfg.Watch.Burst)
	return nil
}

func (s *watchSession) current() (*builder.Builder, *rate.Limiter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builder, s.limiter
}

// notify queues a change. Changes arriving while one is queued coalesce.
func (s *watchSession) notify(path string) {
	select {
	case s.events <- path:
	default:
	}
}

// run rebuilds on every queued change until ctx ends.
func (s *watchSession) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case path := <-s.events:
			if s.isConfig(path) {
				s.reloadConfig()
			}
			if err := s.rebuild(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.log.Error("rebuild failed", "error", err)
			}
		}
	}
}

func (s *watchSession) isConfig(path string) bool {
	if s.configPath == "" {
		return false
	}
	a, errA := filepath.Abs(path)
	b, errB := filepath.Abs(s.configPath)
	return errA == nil && errB == nil && a == b
}

// reloadConfig keeps the previous configuration when the new one is invalid.
func (s *watchSession) reloadConfig() {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		s.log.Warn("configuration reload rejected", "file", s.configPath, "error", err)
		return
	}
	if err := s.apply(cfg); err != nil {
		s.log.Warn("configuration reload rejected", "file", s.configPath, "error", err)
		return
	}
	logger.SetLevel(cfg.Log.Level)
	s.log.Info("configuration reloaded", "file", s.configPath)
}

// rebuild waits for the limiter, then reloads the fixture and builds it.
func (s *watchSession) rebuild(ctx context.Context) error {
	b, limiter := s.current()
	if err := limiter.Wait(ctx); err != nil {
		return err
	}

	g, err := fixture.Load(s.fixturePath)
	if err != nil {
		return err
	}
	gen := s.store.Reset()
	start := time.Now()
	tree, stats, err := b.BuildWithStats(ctx, g.Root)
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}
	s.log.Info("snapshot rebuilt",
		"tree_id", tree.ID,
		"generation", gen,
		"nodes", stats.Accepted,
		"records", s.store.Len(),
		"duration", time.Since(start),
	)
	return s.format.Format(s.out, tree)
}

func runWatch(c *cli.Context) error {
	path, err := fixturePath(c)
	if err != nil {
		return err
	}
	cfg := GetConfig(c)
	log := GetLogger(c)
	if c.Bool("metrics") {
		cfg.Metrics.Enabled = true
	}
	if addr := c.String("metrics-addr"); addr != "" {
		cfg.Metrics.Addr = addr
	}

	s, err := newWatchSession(cfg, path, c.String("config"), outWriter(c), formatter(c), log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()
	sh := shutdown.NewHandler(cfg.Watch.ShutdownTimeout)

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	for _, p := range []string{s.fixturePath, s.configPath} {
		if p == "" {
			continue
		}
		if err := w.Watch(p); err != nil {
			_ = w.Stop()
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}
	w.OnChange(s.notify)
	w.StartAsync()
	sh.OnShutdown(func(context.Context) error { return w.Stop() })

	if cfg.Metrics.Enabled {
		srv := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           metricsMux(s.metrics),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("metrics server listening", "addr", cfg.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", "error", err)
				sh.Shutdown()
			}
		}()
		sh.OnShutdown(srv.Shutdown)
	}
	sh.OnShutdown(func(context.Context) error {
		cancel()
		return nil
	})

	if err := s.rebuild(ctx); err != nil {
		log.Error("initial build failed", "error", err)
	}
	go s.run(ctx)

	return sh.Wait(ctx)
}

func metricsMux(reg *metric.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	return mux
}
