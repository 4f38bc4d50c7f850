package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yndnr/snaptree-go/internal/core/classify"
	"github.com/yndnr/snaptree-go/internal/core/domain"
	"github.com/yndnr/snaptree-go/internal/core/fiber"
)

type store struct{ state any }

func (s *store) GetState() any { return s.state }

type point struct {
	X      int    `json:"x"`
	Y      int    `json:"y,omitempty"`
	Hidden string `json:"-"`
	Label  string
	note   string
}

func TestFilterAndFormatData(t *testing.T) {
	t.Run("nil payload", func(t *testing.T) {
		assert.Empty(t, FilterAndFormatData(nil))
	})

	t.Run("primitive payload", func(t *testing.T) {
		assert.Equal(t, map[string]any{"value": 5}, FilterAndFormatData(5))
	})

	t.Run("top level slice keyed by index", func(t *testing.T) {
		got := FilterAndFormatData([]any{1, "x"})
		assert.Equal(t, map[string]any{"0": 1, "1": "x"}, got)
	})

	t.Run("drops functions and internal keys", func(t *testing.T) {
		got := FilterAndFormatData(map[string]any{
			"title":    "todo",
			"onClick":  func() {},
			"children": []any{"a"},
			"key":      "k1",
			"done":     false,
			"owner":    nil,
		})
		assert.Equal(t, map[string]any{"title": "todo", "done": false, "owner": nil}, got)
	})

	t.Run("structs use json names", func(t *testing.T) {
		got := FilterAndFormatData(point{X: 1, Label: "p", note: "n", Hidden: "h"})
		assert.Equal(t, map[string]any{"x": 1, "y": 0, "Label": "p"}, got)
	})

	t.Run("elements become placeholders", func(t *testing.T) {
		got := FilterAndFormatData(map[string]any{
			"el":    fiber.NewElement("div"),
			"node":  &fiber.Node{},
			"react": map[string]any{"$$typeof": "react.element", "props": map[string]any{}},
		})
		assert.Equal(t, ElementPlaceholder, got["el"])
		assert.Equal(t, ElementPlaceholder, got["node"])
		assert.Equal(t, ElementPlaceholder, got["react"])
	})

	t.Run("cycles become placeholders", func(t *testing.T) {
		m := map[string]any{"name": "loop"}
		m["self"] = m
		got := FilterAndFormatData(m)
		assert.Equal(t, "loop", got["name"])
		assert.Equal(t, CircularPlaceholder, got["self"])
	})

	t.Run("shared values are not cycles", func(t *testing.T) {
		shared := map[string]any{"v": 1}
		got := FilterAndFormatData(map[string]any{"a": shared, "b": shared})
		assert.Equal(t, map[string]any{"v": 1}, got["a"])
		assert.Equal(t, map[string]any{"v": 1}, got["b"])
	})

	t.Run("depth is capped", func(t *testing.T) {
		e := New(Options{MaxDepth: 2})
		got := e.FilterAndFormatData(map[string]any{
			"a": map[string]any{"b": map[string]any{"c": 1}},
		})
		assert.Equal(t, map[string]any{"a": map[string]any{"b": DepthPlaceholder}}, got)
	})
}

func TestCopyValue(t *testing.T) {
	t.Run("presence kept", func(t *testing.T) {
		for _, v := range []any{nil, false, 0, ""} {
			assert.Equal(t, v, CopyValue(v))
		}
	})

	t.Run("detached from source", func(t *testing.T) {
		items := []any{"milk"}
		src := map[string]any{"count": 0, "items": items, "key": "k", "type": "todo"}
		got := CopyValue(src)
		assert.Equal(t, map[string]any{"count": 0, "items": []any{"milk"}, "key": "k", "type": "todo"}, got)

		src["count"] = 99
		items[0] = "eggs"
		assert.Equal(t, 0, got.(map[string]any)["count"])
		assert.Equal(t, []any{"milk"}, got.(map[string]any)["items"])
	})

	t.Run("structs and pointers", func(t *testing.T) {
		got := CopyValue(&point{X: 1, Label: "p"})
		assert.Equal(t, map[string]any{"x": 1, "y": 0, "Label": "p"}, got)
	})

	t.Run("cycles and functions", func(t *testing.T) {
		m := map[string]any{"set": func() {}}
		m["self"] = m
		assert.Equal(t, map[string]any{"self": CircularPlaceholder}, CopyValue(m))
		assert.Nil(t, CopyValue(func() {}))
	})
}

func hookChain(states ...any) (*fiber.Hook, []*fiber.Queue) {
	var head, prev *fiber.Hook
	var queues []*fiber.Queue
	for _, s := range states {
		q := &fiber.Queue{Dispatch: func(any) {}}
		h := &fiber.Hook{MemoizedState: s, Queue: q}
		queues = append(queues, q)
		if prev == nil {
			head = h
		} else {
			prev.Next = h
		}
		prev = h
	}
	return head, queues
}

func TestGetHooksStateAndUpdateMethod(t *testing.T) {
	t.Run("collects state hooks in order", func(t *testing.T) {
		head, queues := hookChain(0, "", false)
		// An effect record between state hooks is skipped.
		head.Next = &fiber.Hook{MemoizedState: "effect", Next: head.Next}

		got, err := GetHooksStateAndUpdateMethod(head)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 0, got[0].State)
		assert.Equal(t, "", got[1].State)
		assert.Equal(t, false, got[2].State)
		for i, hs := range got {
			assert.Same(t, queues[i], hs.Mutator)
		}
	})

	t.Run("empty chain", func(t *testing.T) {
		got, err := GetHooksStateAndUpdateMethod(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("cycle", func(t *testing.T) {
		head, _ := hookChain(1, 2)
		head.Next.Next = head
		got, err := GetHooksStateAndUpdateMethod(head)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domain.ErrHookChainCycle))
	})

	t.Run("too long", func(t *testing.T) {
		head, _ := hookChain(1, 2, 3, 4)
		_, err := New(Options{MaxHooks: 3}).GetHooksStateAndUpdateMethod(head)
		assert.True(t, errors.Is(err, domain.ErrHookChainTooLong))
	})

	t.Run("queue without dispatch", func(t *testing.T) {
		head := &fiber.Hook{MemoizedState: 1, Queue: &fiber.Queue{}}
		_, err := GetHooksStateAndUpdateMethod(head)
		assert.True(t, errors.Is(err, domain.ErrMalformedHook))
	})
}

func TestGetStateAndContextData(t *testing.T) {
	st := &store{state: map[string]any{"todos": []any{"a"}, "filter": "all"}}
	memo := &fiber.Hook{MemoizedState: []any{map[string]any{"store": st}, []any{st}}}
	effect := &fiber.Hook{MemoizedState: "effect"}
	memo.Next = effect
	effect.Next = &fiber.Hook{MemoizedState: 3, Queue: &fiber.Queue{Dispatch: func(any) {}}}

	got := std.GetStateAndContextData(memo, "Provider", []string{"useMemo", "useEffect", "useState"})
	assert.Equal(t, map[string]any{
		"todos":       []any{"a"},
		"filter":      "all",
		"useState[2]": 3,
	}, got)

	t.Run("without debug types", func(t *testing.T) {
		got := std.GetStateAndContextData(memo, "Provider", nil)
		assert.Equal(t, map[string]any{"Provider[2]": 3}, got)
	})

	t.Run("cyclic chain terminates", func(t *testing.T) {
		h := &fiber.Hook{MemoizedState: 1, Queue: &fiber.Queue{Dispatch: func(any) {}}}
		h.Next = h
		got := std.GetStateAndContextData(h, "Provider", nil)
		assert.Equal(t, map[string]any{"Provider[0]": 1}, got)
	})
}

func TestExtractProps(t *testing.T) {
	router := map[string]any{
		"location":  map[string]any{"pathname": "/todos", "search": "?q=1"},
		"navigator": map[string]any{},
	}
	assert.Equal(t, map[string]any{"pathname": "/todos"}, ExtractProps(classify.ShapeRouter, router))

	route := map[string]any{"match": map[string]any{"pathname": "/todos/1", "params": map[string]any{"id": "1"}}}
	assert.Equal(t, map[string]any{"pathname": "/todos/1"}, ExtractProps(classify.ShapeRenderedRoute, route))
	assert.Empty(t, ExtractProps(classify.ShapeRenderedRoute, map[string]any{}))

	assert.Equal(t, map[string]any{"title": "x"},
		ExtractProps(classify.ShapeGeneric, map[string]any{"title": "x", "children": "y"}))
}

func TestContextValue(t *testing.T) {
	assert.Equal(t, map[string]any{ContextKey: "dark"}, std.ContextValue(map[string]any{"value": "dark"}))
	assert.Equal(t, map[string]any{ContextKey: nil}, std.ContextValue(map[string]any{"value": nil}))
	assert.Equal(t, map[string]any{"user": "ann"},
		std.ContextValue(map[string]any{"value": map[string]any{"user": "ann"}}))
	assert.Equal(t, map[string]any{ContextKey: nil}, std.ContextValue(nil))
}
