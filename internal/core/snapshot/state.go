package snapshot

import (
	"encoding/json"
	"fmt"
)

// StateKind tells the variants of State apart.
type StateKind int

const (
	// KindStateless marks a component-like unit with no extractable state.
	KindStateless StateKind = iota
	// KindValue holds a class-like unit's state object, deep-copied.
	KindValue
	// KindHooks holds named chained state entries, in hook order.
	KindHooks
	// KindRoot marks the synthetic top-level node.
	KindRoot
)

// Literal encodings of the non-value variants.
const (
	StatelessLiteral = "stateless"
	RootLiteral      = "root"
)

func (k StateKind) String() string {
	switch k {
	case KindStateless:
		return "stateless"
	case KindValue:
		return "value"
	case KindHooks:
		return "hooks"
	case KindRoot:
		return "root"
	default:
		return fmt.Sprintf("StateKind(%d)", int(k))
	}
}

// HookEntry is one named chained state value.
type HookEntry struct {
	Name  string
	Value any
}

// State is the state shown for a snapshot node.
//
// It encodes as "stateless", as the direct value itself, as
// {"hooksState":[{name: value}, ...]} or as "root".
type State struct {
	kind  StateKind
	value any
	hooks []HookEntry
}

// Stateless returns the stateless marker.
func Stateless() State { return State{kind: KindStateless} }

// Root returns the synthetic root state.
func Root() State { return State{kind: KindRoot} }

// Value wraps a direct state value. nil and false are kept as they are.
func Value(v any) State { return State{kind: KindValue, value: v} }

// Hooks wraps named chained state entries. The slice is copied.
func Hooks(entries []HookEntry) State {
	return State{kind: KindHooks, hooks: append([]HookEntry(nil), entries...)}
}

// Kind returns the variant.
func (s State) Kind() StateKind { return s.kind }

// Value returns the direct value of a KindValue state.
func (s State) Value() (any, bool) {
	return s.value, s.kind == KindValue
}

// Hooks returns a copy of the entries of a KindHooks state.
func (s State) Hooks() []HookEntry {
	return append([]HookEntry(nil), s.hooks...)
}

// IsStateless reports whether s is the stateless marker.
func (s State) IsStateless() bool { return s.kind == KindStateless }

// encoded returns the JSON/YAML-shaped form of s.
func (s State) encoded() any {
	switch s.kind {
	case KindValue:
		return s.value
	case KindHooks:
		list := make([]map[string]any, len(s.hooks))
		for i, h := range s.hooks {
			list[i] = map[string]any{h.Name: h.Value}
		}
		return map[string]any{"hooksState": list}
	case KindRoot:
		return RootLiteral
	default:
		return StatelessLiteral
	}
}

// MarshalJSON implements json.Marshaler.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.encoded())
}

// MarshalYAML implements yaml.Marshaler.
func (s State) MarshalYAML() (any, error) {
	return s.encoded(), nil
}

// String returns a compact rendering for tables and logs.
func (s State) String() string {
	switch s.kind {
	case KindValue, KindHooks:
		b, err := json.Marshal(s.encoded())
		if err != nil {
			return fmt.Sprintf("%v", s.encoded())
		}
		return string(b)
	default:
		return s.encoded().(string)
	}
}
