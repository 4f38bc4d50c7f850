package fiber

// Node is one unit of the host runtime's live tree.
//
// Nodes are owned by the host. The engine only reads them, plus the tag
// list of rendered elements reachable through StateNode. Child and Sibling
// form a first-child/next-sibling tree that may contain cycles, so callers
// must never assume a walk over these links terminates on its own.
type Node struct {
	Tag     Kind
	Child   *Node
	Sibling *Node

	// MemoizedState is the committed state. For hook-using units it is the
	// head *Hook of the chained state list; for other units it is opaque.
	MemoizedState any

	// MemoizedProps are the committed input parameters, usually a map[string]any.
	MemoizedProps any

	// StateNode is the unit instance (an Instance for class-like units) or
	// the rendered element for host nodes.
	StateNode any

	ElementType *ElementType
	Timing      *Timing

	// DebugHookTypes lists the hook kinds in call order, when the host records them.
	DebugHookTypes []string
}

// Timing holds the host's profiling counters, copied through opaquely.
type Timing struct {
	ActualDuration   float64 `json:"actualDuration" yaml:"actualDuration"`
	ActualStartTime  float64 `json:"actualStartTime" yaml:"actualStartTime"`
	SelfBaseDuration float64 `json:"selfBaseDuration" yaml:"selfBaseDuration"`
	TreeBaseDuration float64 `json:"treeBaseDuration" yaml:"treeBaseDuration"`
}

// ElementType describes what a node renders. Any field may be empty.
type ElementType struct {
	Name        string
	DisplayName string

	// Render is the wrapped render function of forward-ref style units.
	Render *ElementType
	// Context is set on context providers and consumers.
	Context *Context
	// Result is the resolved target of a lazily loaded unit.
	Result *ElementType

	// Source is the declared source text of the unit, used to recover hook names.
	Source string
}

// Context is the context object a provider or consumer is bound to.
type Context struct {
	DisplayName string
}

// HeadHook returns the chained state list head, or nil when MemoizedState
// is not a hook record.
func (n *Node) HeadHook() *Hook {
	if n == nil {
		return nil
	}
	h, _ := n.MemoizedState.(*Hook)
	return h
}

// Instance returns the class-like state holder, if StateNode is one.
func (n *Node) Instance() (Instance, bool) {
	if n == nil || n.StateNode == nil {
		return nil, false
	}
	inst, ok := n.StateNode.(Instance)
	return inst, ok
}

// Props returns MemoizedProps as a map when it has that shape.
func (n *Node) Props() (map[string]any, bool) {
	if n == nil {
		return nil, false
	}
	p, ok := n.MemoizedProps.(map[string]any)
	return p, ok
}

// Taggable returns the first child's rendered element when it exposes a
// tag list. This is the element a snapshot node is correlated with.
func (n *Node) Taggable() (Taggable, bool) {
	if n == nil || n.Child == nil || n.Child.StateNode == nil {
		return nil, false
	}
	t, ok := n.Child.StateNode.(Taggable)
	if !ok || t.ClassList() == nil {
		return nil, false
	}
	return t, true
}
