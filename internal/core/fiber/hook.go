package fiber

// Mutator replaces a live unit's current state. Record store entries are
// Mutators; replaying a snapshot calls SetState with the recorded value.
type Mutator interface {
	SetState(value any)
}

// Instance is the state holder of class-like units.
type Instance interface {
	Mutator
	// State returns the current state and whether the unit defines one.
	// A defined state may be nil or false.
	State() (value any, ok bool)
}

// StateGetter is implemented by store-like values handed down by providers.
type StateGetter interface {
	GetState() any
}

// Hook is one record of a unit's chained state list.
type Hook struct {
	MemoizedState any
	// Queue is set for state and reducer hooks; other hook kinds leave it nil.
	Queue *Queue
	Next  *Hook
}

// Queue is the update queue of a state hook.
type Queue struct {
	LastRenderedState any
	// Dispatch schedules a state update on the host.
	Dispatch func(action any)
}

// SetState implements Mutator by dispatching value.
func (q *Queue) SetState(value any) {
	if q == nil || q.Dispatch == nil {
		return
	}
	q.Dispatch(value)
}

// Len counts hook records, stopping after limit records so a cyclic list
// still returns. It reports false if the limit was reached.
func (h *Hook) Len(limit int) (int, bool) {
	n := 0
	for cur := h; cur != nil; cur = cur.Next {
		if n == limit {
			return n, false
		}
		n++
	}
	return n, true
}
