package snapshot

// Data is the per-node payload shown next to the state.
type Data struct {
	ActualDuration   *float64 `json:"actualDuration,omitempty" yaml:"actualDuration,omitempty"`
	ActualStartTime  *float64 `json:"actualStartTime,omitempty" yaml:"actualStartTime,omitempty"`
	SelfBaseDuration *float64 `json:"selfBaseDuration,omitempty" yaml:"selfBaseDuration,omitempty"`
	TreeBaseDuration *float64 `json:"treeBaseDuration,omitempty" yaml:"treeBaseDuration,omitempty"`

	Props   map[string]any `json:"props" yaml:"props"`
	Context map[string]any `json:"context" yaml:"context"`

	// State is set for class-like units. A set pointer to nil or false is
	// a defined state and is encoded as such.
	State *any `json:"state,omitempty" yaml:"state,omitempty"`

	HooksState map[string]any `json:"hooksState,omitempty" yaml:"hooksState,omitempty"`
	// HooksIndex holds one record store index per entry, in hook order.
	HooksIndex []int `json:"hooksIndex,omitempty" yaml:"hooksIndex,omitempty"`
	// Index is the record store index of a class-like unit's instance.
	Index *int `json:"index,omitempty" yaml:"index,omitempty"`
}

// NewData returns Data with empty props and context.
func NewData() Data {
	return Data{
		Props:   make(map[string]any),
		Context: make(map[string]any),
	}
}

// SetState records v as the defined direct state.
func (d *Data) SetState(v any) {
	d.State = &v
}

// StateValue returns the direct state and whether one is defined.
func (d Data) StateValue() (any, bool) {
	if d.State == nil {
		return nil, false
	}
	return *d.State, true
}

// SetIndex records the instance's record store index.
func (d *Data) SetIndex(i int) {
	d.Index = &i
}

// Node is one snapshot node.
type Node struct {
	Name     string  `json:"name" yaml:"name"`
	State    State   `json:"state" yaml:"state"`
	Data     Data    `json:"componentData" yaml:"componentData"`
	TagID    string  `json:"rtid,omitempty" yaml:"rtid,omitempty"`
	Children []*Node `json:"children" yaml:"children"`
}

// NewNode returns a childless node.
func NewNode(name string, state State, data Data, tagID string) *Node {
	return &Node{
		Name:     name,
		State:    state,
		Data:     data,
		TagID:    tagID,
		Children: []*Node{},
	}
}

// AddChild appends a new node under n and returns it.
func (n *Node) AddChild(name string, state State, data Data, tagID string) *Node {
	child := NewNode(name, state, data, tagID)
	n.Children = append(n.Children, child)
	return child
}
