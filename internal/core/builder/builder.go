package builder

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/yndnr/snaptree-go/internal/core/domain"
	"github.com/yndnr/snaptree-go/internal/core/extract"
	"github.com/yndnr/snaptree-go/internal/core/fiber"
	"github.com/yndnr/snaptree-go/internal/core/filter"
	"github.com/yndnr/snaptree-go/internal/core/hooknames"
	"github.com/yndnr/snaptree-go/internal/core/snapshot"
	"github.com/yndnr/snaptree-go/internal/telemetry/logger"
	"github.com/yndnr/snaptree-go/internal/telemetry/metric"
)

// DefaultTagPrefix starts the tags written to rendered elements.
const DefaultTagPrefix = "fromLinkFiber"

// Recorder saves mutators and returns their indices.
// *record.Store implements it.
type Recorder interface {
	SaveNew(m fiber.Mutator) (int, error)
}

// Builder builds snapshot trees. It keeps no per-build state and may be
// used from several goroutines; builds sharing a Recorder never collide
// on indices as long as the Recorder's SaveNew is atomic.
type Builder struct {
	store     Recorder
	filters   filter.Filters
	extractor *extract.Extractor
	names     hooknames.Resolver
	tagPrefix string
	logger    logger.Logger
	metrics   *metric.Registry
	now       func() time.Time

	builds atomic.Uint64
}

// Option configures a Builder.
type Option func(*Builder)

// WithFilters replaces the default exclusion sets.
func WithFilters(f filter.Filters) Option {
	return func(b *Builder) { b.filters = f }
}

// WithExtractor sets the extractor and, with it, the payload limits.
func WithExtractor(e *extract.Extractor) Option {
	return func(b *Builder) { b.extractor = e }
}

// WithNameResolver sets how hook names are recovered from unit sources.
func WithNameResolver(r hooknames.Resolver) Option {
	return func(b *Builder) { b.names = r }
}

// WithTagPrefix sets the tag prefix.
func WithTagPrefix(prefix string) Option {
	return func(b *Builder) { b.tagPrefix = prefix }
}

// WithLogger sets the logger. Without it the context's logger is used.
func WithLogger(l logger.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithMetrics reports every build to r.
func WithMetrics(r *metric.Registry) Option {
	return func(b *Builder) { b.metrics = r }
}

// WithClock sets the time source for tree timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// New creates a Builder saving mutators in store.
func New(store Recorder, opts ...Option) *Builder {
	b := &Builder{
		store:     store,
		filters:   filter.Default(),
		extractor: extract.New(extract.Options{}),
		names:     hooknames.Scanner{},
		tagPrefix: DefaultTagPrefix,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build walks the live tree below root and returns a fresh snapshot tree.
// root itself is visited like any other node; the returned tree's root is
// a synthetic node named "root".
func (b *Builder) Build(ctx context.Context, root *fiber.Node) (*snapshot.Tree, error) {
	tree, _, err := b.BuildWithStats(ctx, root)
	return tree, err
}

// BuildWithStats is Build, also returning what the walk saw.
func (b *Builder) BuildWithStats(ctx context.Context, root *fiber.Node) (*snapshot.Tree, Stats, error) {
	start := time.Now()
	tree, stats, err := b.build(ctx, root)
	b.metrics.ObserveBuild(stats.sample(time.Since(start), err))
	return tree, stats, err
}

func (b *Builder) build(ctx context.Context, root *fiber.Node) (*snapshot.Tree, Stats, error) {
	if root == nil {
		return nil, Stats{}, domain.ErrNilRoot
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, domain.ErrBuildAborted.WithCause(err)
	}

	tree, err := snapshot.NewTree(b.now())
	if err != nil {
		return nil, Stats{}, fmt.Errorf("new tree: %w", err)
	}

	ctx = logger.WithTreeID(logger.WithBuildID(ctx, b.builds.Add(1)), tree.ID)
	if b.logger != nil {
		ctx = logger.WithLogger(ctx, b.logger)
	}

	p := newPass(ctx, b)
	p.visit(root, tree.Root)
	if p.err != nil {
		return nil, p.stats, domain.ErrBuildAborted.WithCause(p.err)
	}

	p.log.Debug("snapshot built",
		"visited", p.stats.Visited,
		"accepted", p.stats.Accepted,
		"excluded", p.stats.Excluded,
		"cycles", p.stats.Cycles,
		"tagged", p.stats.Tagged,
	)
	return tree, p.stats, nil
}
