package fixture

import (
	"sync"

	"github.com/yndnr/snaptree-go/internal/core/fiber"
)

// InstanceHook is the Update.Hook value of instance updates.
const InstanceHook = -1

// Update is one recorded SetState call.
type Update struct {
	// Node is the id of the updated node.
	Node string
	// Hook is the position of the updated hook record, or InstanceHook.
	Hook  int
	Value any
}

type updateLog struct {
	mu      sync.Mutex
	updates []Update
}

func (l *updateLog) add(u Update) {
	l.mu.Lock()
	l.updates = append(l.updates, u)
	l.mu.Unlock()
}

func (l *updateLog) list() []Update {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Update(nil), l.updates...)
}

// dispatcher returns a dispatch function that records the update and
// commits it to h, as the host would after re-rendering.
func (l *updateLog) dispatcher(id string, pos int, h *fiber.Hook) func(any) {
	return func(v any) {
		l.add(Update{Node: id, Hook: pos, Value: v})
		h.MemoizedState = v
		h.Queue.LastRenderedState = v
	}
}

// Instance is a class-like state holder that records updates.
type Instance struct {
	mu      sync.Mutex
	id      string
	state   any
	defined bool
	log     *updateLog
}

var _ fiber.Instance = (*Instance)(nil)

// State implements fiber.Instance.
func (i *Instance) State() (any, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state, i.defined
}

// SetState implements fiber.Mutator.
func (i *Instance) SetState(v any) {
	i.mu.Lock()
	i.state = v
	i.defined = true
	i.mu.Unlock()
	if i.log != nil {
		i.log.add(Update{Node: i.id, Hook: InstanceHook, Value: v})
	}
}

// Store is a minimal store handed down by a store-binding provider.
type Store struct {
	state any
}

var _ fiber.StateGetter = (*Store)(nil)

// GetState implements fiber.StateGetter.
func (s *Store) GetState() any { return s.state }
