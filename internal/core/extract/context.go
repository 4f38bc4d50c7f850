package extract

import (
	"strconv"

	"github.com/yndnr/snaptree-go/internal/core/fiber"
)

// ContextKey wraps a primitive context value into a map.
const ContextKey = "CONTEXT"

// valueHooks are the hook kinds whose memoized value is data rather than
// an effect, a ref or a callback.
var valueHooks = map[string]bool{
	"useState":             true,
	"useReducer":           true,
	"useMemo":              true,
	"useContext":           true,
	"useSyncExternalStore": true,
}

// GetStateAndContextData extracts the context a store-binding Provider
// hands down, from its chained state list.
//
// debugTypes names each record's hook kind in call order. Records of
// effect-like kinds are skipped; when debugTypes is shorter than the list,
// only records with an update queue are used. Memo records store a
// [value, deps] pair and contribute the value. A value exposing GetState
// (a store) contributes its state, merged at the top level. Any other
// value is stored under "<hookKind>[<position>]", with kindName standing
// in for unknown hook kinds.
func (e *Extractor) GetStateAndContextData(head *fiber.Hook, kindName string, debugTypes []string) map[string]any {
	out := make(map[string]any)
	limit := e.maxHooks()
	seen := make(map[*fiber.Hook]struct{})

	pos := 0
	for h := head; h != nil && pos < limit; h = h.Next {
		if _, ok := seen[h]; ok {
			break
		}
		seen[h] = struct{}{}

		hookKind := ""
		if pos < len(debugTypes) {
			hookKind = debugTypes[pos]
		}
		use := valueHooks[hookKind] || (hookKind == "" && h.Queue != nil)
		if use {
			value := h.MemoizedState
			if hookKind == "useMemo" {
				if pair, ok := value.([]any); ok && len(pair) == 2 {
					value = pair[0]
				}
			}
			if st, ok := storeState(value); ok {
				for k, v := range e.FilterAndFormatData(st) {
					out[k] = v
				}
			} else {
				label := hookKind
				if label == "" {
					label = kindName
				}
				formatted := e.FilterAndFormatData(map[string]any{"v": value})
				out[label+"["+strconv.Itoa(pos)+"]"] = formatted["v"]
			}
		}
		pos++
	}
	return out
}

// storeState returns the state of a store, or of a {"store": store} value.
func storeState(value any) (any, bool) {
	if g, ok := value.(fiber.StateGetter); ok {
		return g.GetState(), true
	}
	if m, ok := value.(map[string]any); ok {
		if g, ok := m["store"].(fiber.StateGetter); ok {
			return g.GetState(), true
		}
	}
	return nil, false
}

// ContextValue extracts the value an anonymous context provider passes in
// its "value" prop. Values that are not maps, slices or structs are
// wrapped as {"CONTEXT": value} first.
func (e *Extractor) ContextValue(props any) map[string]any {
	var value any
	if m, ok := props.(map[string]any); ok {
		value = m["value"]
	}
	if !isObject(value) {
		value = map[string]any{ContextKey: value}
	}
	return e.FilterAndFormatData(value)
}

func isObject(v any) bool {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return false
	}
	return true
}
