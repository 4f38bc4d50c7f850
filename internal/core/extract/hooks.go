package extract

import (
	"github.com/yndnr/snaptree-go/internal/core/domain"
	"github.com/yndnr/snaptree-go/internal/core/fiber"
)

// HookState pairs a state hook's current value with the queue that can
// replace it.
type HookState struct {
	State   any
	Mutator fiber.Mutator
}

// GetHooksStateAndUpdateMethod walks the chained state list once, front to
// back, and returns one HookState per record that has an update queue.
// Records without a queue (effects, refs, memos) are skipped.
//
// The walk fails with ErrMalformedHook on a queue that cannot dispatch,
// ErrHookChainCycle when a record is reached twice and ErrHookChainTooLong
// when more than MaxHooks records are seen. No partial result is returned
// on failure.
func (e *Extractor) GetHooksStateAndUpdateMethod(head *fiber.Hook) ([]HookState, error) {
	limit := e.maxHooks()
	seen := make(map[*fiber.Hook]struct{})

	var states []HookState
	pos := 0
	for h := head; h != nil; h = h.Next {
		if _, ok := seen[h]; ok {
			return nil, domain.ErrHookChainCycle.WithDetailsf("record %d links back to an earlier record", pos)
		}
		if pos == limit {
			return nil, domain.ErrHookChainTooLong.WithDetailsf("limit %d", limit)
		}
		seen[h] = struct{}{}

		if h.Queue != nil {
			if h.Queue.Dispatch == nil {
				return nil, domain.ErrMalformedHook.WithDetailsf("record %d has a queue without dispatch", pos)
			}
			states = append(states, HookState{State: h.MemoizedState, Mutator: h.Queue})
		}
		pos++
	}
	return states, nil
}

// GetHooksStateAndUpdateMethod walks head with the default limits.
func GetHooksStateAndUpdateMethod(head *fiber.Hook) ([]HookState, error) {
	return std.GetHooksStateAndUpdateMethod(head)
}
