package record

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/yndnr/snaptree-go/internal/core/domain"
	"github.com/yndnr/snaptree-go/internal/core/fiber"
	"github.com/yndnr/snaptree-go/pkg/cmap"
)

// Entry is one saved mutator.
type Entry struct {
	Index   int
	Mutator fiber.Mutator
}

// Store is an append-only table of mutators.
type Store struct {
	entries *cmap.Map[int, fiber.Mutator]
	next    atomic.Int64
	gen     atomic.Uint64

	// Saves hold the read side; Reset holds the write side so no save
	// straddles two generations.
	mu sync.RWMutex
}

// Option configures the Store.
type Option func(*options)

type options struct {
	shards int
}

// WithShardCount sets the shard count of the backing map.
func WithShardCount(n int) Option {
	return func(o *options) { o.shards = n }
}

// New creates an empty store in generation 0.
func New(opts ...Option) *Store {
	o := options{shards: cmap.DefaultShardCount}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		entries: cmap.New[int, fiber.Mutator](cmap.WithShardCount(o.shards)),
	}
}

// SaveNew appends m and returns its index.
func (s *Store) SaveNew(m fiber.Mutator) (int, error) {
	if m == nil {
		return 0, domain.ErrNilMutator
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := int(s.next.Add(1) - 1)
	s.entries.Set(idx, m)
	return idx, nil
}

// Get returns the mutator saved at index in the current generation.
func (s *Store) Get(index int) (fiber.Mutator, error) {
	m, ok := s.entries.Get(index)
	if !ok {
		return nil, domain.ErrRecordNotFound.WithDetailsf("index %d (generation %d)", index, s.Generation())
	}
	return m, nil
}

// Len returns the number of saved entries.
func (s *Store) Len() int {
	return s.entries.Count()
}

// Next returns the index the next SaveNew will issue.
func (s *Store) Next() int {
	return int(s.next.Load())
}

// Generation counts the resets since the store was created.
func (s *Store) Generation() uint64 {
	return s.gen.Load()
}

// Reset drops all entries, restarts indices at 0 and begins a new
// generation. It returns the new generation.
func (s *Store) Reset() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries.Clear()
	s.next.Store(0)
	return s.gen.Add(1)
}

// Entries returns all entries sorted by index.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, s.entries.Count())
	s.entries.Range(func(idx int, m fiber.Mutator) bool {
		entries = append(entries, Entry{Index: idx, Mutator: m})
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Index < entries[j].Index
	})
	return entries
}
