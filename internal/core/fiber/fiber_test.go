package fiber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"FunctionComponent", FunctionComponent, true},
		{"classcomponent", ClassComponent, true},
		{"10", ContextProvider, true},
		{" HostComponent ", HostComponent, true},
		{"20", 0, false},
		{"Widget", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "ContextProvider", ContextProvider.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.False(t, Kind(20).Known())
}

func TestHook_LenStopsOnCycle(t *testing.T) {
	a := &Hook{}
	b := &Hook{}
	a.Next = b
	b.Next = a

	n, ok := a.Len(10)
	assert.Equal(t, 10, n)
	assert.False(t, ok)

	c := &Hook{Next: &Hook{}}
	n, ok = c.Len(10)
	assert.Equal(t, 2, n)
	assert.True(t, ok)
}

func TestQueue_SetState(t *testing.T) {
	var got any
	q := &Queue{Dispatch: func(v any) { got = v }}
	q.SetState(42)
	assert.Equal(t, 42, got)

	// A queue without dispatch is inert.
	(&Queue{}).SetState(1)
	var nilQueue *Queue
	nilQueue.SetState(1)
}

func TestClassList(t *testing.T) {
	e := NewElement("div", "app", "app")
	require.Equal(t, []string{"app"}, e.Classes())

	l := e.ClassList()
	l.Add("fromLinkFiber0")
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "fromLinkFiber0", l.Item(1))
	assert.Equal(t, "", l.Item(5))

	l.Remove("fromLinkFiber0")
	assert.Equal(t, []string{"app"}, e.Classes())
}

type counter struct{ state any }

func (c *counter) SetState(v any)     { c.state = v }
func (c *counter) State() (any, bool) { return c.state, true }

func TestNode_Accessors(t *testing.T) {
	head := &Hook{MemoizedState: 1}
	el := NewElement("button")
	n := &Node{
		Tag:           FunctionComponent,
		MemoizedState: head,
		MemoizedProps: map[string]any{"label": "go"},
		Child:         &Node{Tag: HostComponent, StateNode: el},
	}

	assert.Same(t, head, n.HeadHook())
	props, ok := n.Props()
	require.True(t, ok)
	assert.Equal(t, "go", props["label"])

	tg, ok := n.Taggable()
	require.True(t, ok)
	assert.Same(t, el, tg)

	_, ok = n.Instance()
	assert.False(t, ok)

	cls := &Node{Tag: ClassComponent, StateNode: &counter{state: false}}
	inst, ok := cls.Instance()
	require.True(t, ok)
	v, defined := inst.State()
	assert.True(t, defined)
	assert.Equal(t, false, v)

	var nilNode *Node
	assert.Nil(t, nilNode.HeadHook())
	_, ok = nilNode.Taggable()
	assert.False(t, ok)
}
