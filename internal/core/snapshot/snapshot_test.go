package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestState_JSON(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"stateless", Stateless(), `"stateless"`},
		{"root", Root(), `"root"`},
		{"value", Value(map[string]any{"count": 0}), `{"count":0}`},
		{"null value", Value(nil), `null`},
		{"false value", Value(false), `false`},
		{"hooks", Hooks([]HookEntry{{"todos", []any{}}, {"open", false}}),
			`{"hooksState":[{"todos":[]},{"open":false}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.state)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestState_YAML(t *testing.T) {
	b, err := yaml.Marshal(map[string]State{"s": Hooks([]HookEntry{{"count", 1}})})
	require.NoError(t, err)
	var back map[string]any
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, map[string]any{
		"s": map[string]any{"hooksState": []any{map[string]any{"count": 1}}},
	}, back)
}

func TestState_Accessors(t *testing.T) {
	v, ok := Value(false).Value()
	assert.True(t, ok)
	assert.Equal(t, false, v)

	_, ok = Stateless().Value()
	assert.False(t, ok)
	assert.True(t, Stateless().IsStateless())
	assert.Equal(t, KindRoot, Root().Kind())

	entries := []HookEntry{{"a", 1}}
	s := Hooks(entries)
	entries[0].Name = "changed"
	assert.Equal(t, "a", s.Hooks()[0].Name)
	assert.Equal(t, `{"hooksState":[{"a":1}]}`, s.String())
	assert.Equal(t, "stateless", Stateless().String())
}

func TestData_StatePresence(t *testing.T) {
	d := NewData()
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"props":{},"context":{}}`, string(b))

	d.SetState(nil)
	d.SetIndex(0)
	b, err = json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"props":{},"context":{},"state":null,"index":0}`, string(b))

	v, ok := d.StateValue()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func sampleTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree(time.Now())
	require.NoError(t, err)
	app := tree.Root.AddChild("App", Stateless(), NewData(), "fromLinkFiber0")
	board := app.AddChild("Board", Value(map[string]any{"turn": "X"}), NewData(), "fromLinkFiber1")
	board.AddChild("Square", Stateless(), NewData(), "")
	app.AddChild("Footer", Stateless(), NewData(), "")
	return tree
}

func TestTree_WalkCountFlatten(t *testing.T) {
	tree := sampleTree(t)
	assert.Equal(t, 5, tree.Count())

	var names []string
	tree.Walk(func(n *Node, depth int) bool {
		names = append(names, n.Name)
		return n.Name != "Board"
	})
	assert.Equal(t, []string{"root", "App", "Board", "Footer"}, names)

	rows := tree.Flatten()
	require.Len(t, rows, 4)
	assert.Equal(t, "App", rows[0].Path)
	assert.Equal(t, "App/Board/Square", rows[2].Path)
	assert.Equal(t, 3, rows[2].Depth)
	assert.Equal(t, "App/Footer", rows[3].Path)

	assert.Equal(t, "fromLinkFiber1", tree.Find("Board").TagID)
	assert.Nil(t, tree.Find("Missing"))

	var empty *Tree
	assert.Equal(t, 0, empty.Count())
}

func TestTree_JSON(t *testing.T) {
	tree := sampleTree(t)
	b, err := json.Marshal(tree.Root.Children[0].Children[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Footer",
		"state": "stateless",
		"componentData": {"props": {}, "context": {}},
		"children": []
	}`, string(b))
}

func TestTreeID(t *testing.T) {
	id, err := GenerateTreeID(time.Now())
	require.NoError(t, err)
	assert.Len(t, id, 31)
	assert.True(t, IsValidTreeID(id))
	assert.False(t, IsValidTreeID("snap-123"))
	assert.False(t, IsValidTreeID("tmss-"+id[len(TreeIDPrefix):]))

	tree := sampleTree(t)
	assert.True(t, IsValidTreeID(tree.ID))
	assert.Equal(t, RootName, tree.Root.Name)
	assert.Equal(t, KindRoot, tree.Root.State.Kind())
}
