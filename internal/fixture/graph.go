package fixture

import (
	"github.com/yndnr/snaptree-go/internal/core/domain"
	"github.com/yndnr/snaptree-go/internal/core/fiber"
)

// Graph is a loaded live tree.
type Graph struct {
	Root *fiber.Node

	nodes    map[string]*fiber.Node
	elements map[string]*fiber.Element
	updates  *updateLog
}

// Node returns the node declared with id.
func (g *Graph) Node(id string) (*fiber.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Element returns the rendered element of the node declared with id.
func (g *Graph) Element(id string) (*fiber.Element, bool) {
	el, ok := g.elements[id]
	return el, ok
}

// Len returns the number of declared nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Updates returns the SetState calls received so far, oldest first.
func (g *Graph) Updates() []Update {
	return g.updates.list()
}

// Graph validates the document and links its nodes. Every call returns a
// fresh graph.
func (d *Document) Graph() (*Graph, error) {
	if d.Root == "" {
		return nil, domain.ErrFixtureInvalid.WithDetails("root is required")
	}
	g := &Graph{
		nodes:    make(map[string]*fiber.Node, len(d.Nodes)),
		elements: make(map[string]*fiber.Element),
		updates:  &updateLog{},
	}

	for i := range d.Nodes {
		nd := &d.Nodes[i]
		if nd.ID == "" {
			return nil, domain.ErrFixtureInvalid.WithDetailsf("node %d has no id", i)
		}
		if _, dup := g.nodes[nd.ID]; dup {
			return nil, domain.ErrFixtureInvalid.WithDetailsf("duplicate node id %q", nd.ID)
		}
		n, err := g.newNode(nd)
		if err != nil {
			return nil, err
		}
		g.nodes[nd.ID] = n
	}

	for _, nd := range d.Nodes {
		n := g.nodes[nd.ID]
		var err error
		if n.Child, err = g.lookup(nd.Child, nd.ID, "child"); err != nil {
			return nil, err
		}
		if n.Sibling, err = g.lookup(nd.Sibling, nd.ID, "sibling"); err != nil {
			return nil, err
		}
	}

	root, ok := g.nodes[d.Root]
	if !ok {
		return nil, domain.ErrFixtureUnknownNode.WithDetailsf("root %q", d.Root)
	}
	g.Root = root
	return g, nil
}

func (g *Graph) lookup(id, from, link string) (*fiber.Node, error) {
	if id == "" {
		return nil, nil
	}
	n, ok := g.nodes[id]
	if !ok {
		return nil, domain.ErrFixtureUnknownNode.WithDetailsf("%s of %q is %q", link, from, id)
	}
	return n, nil
}

func (g *Graph) newNode(nd *NodeDoc) (*fiber.Node, error) {
	kind, ok := fiber.ParseKind(nd.Kind)
	if !ok {
		return nil, domain.ErrFixtureUnknownKind.WithDetailsf("node %q has kind %q", nd.ID, nd.Kind)
	}
	if nd.Instance != nil && nd.Element != nil {
		return nil, domain.ErrFixtureInvalid.WithDetailsf("node %q declares both an instance and an element", nd.ID)
	}

	n := &fiber.Node{
		Tag:           kind,
		MemoizedProps: nd.Props,
		ElementType:   nd.Type.elementType(),
	}
	if nd.Timing != nil {
		t := *nd.Timing
		n.Timing = &t
	}

	switch {
	case nd.Instance != nil:
		n.StateNode = &Instance{
			id:      nd.ID,
			state:   nd.Instance.State,
			defined: !nd.Instance.Undefined,
			log:     g.updates,
		}
	case nd.Element != nil:
		el := fiber.NewElement(nd.Element.Tag, nd.Element.Classes...)
		g.elements[nd.ID] = el
		n.StateNode = el
	}

	if len(nd.Hooks) > 0 {
		n.MemoizedState, n.DebugHookTypes = g.hookChain(nd.ID, nd.Hooks)
	}
	return n, nil
}

// hookChain links hooks into a chained state list. Debug hook kinds are
// only reported when every record declares one.
func (g *Graph) hookChain(id string, hooks []HookDoc) (*fiber.Hook, []string) {
	records := make([]*fiber.Hook, len(hooks))
	kinds := make([]string, 0, len(hooks))
	for i, hd := range hooks {
		h := &fiber.Hook{MemoizedState: hd.value()}
		if hd.hasQueue() {
			h.Queue = &fiber.Queue{LastRenderedState: h.MemoizedState}
			if !hd.Broken {
				h.Queue.Dispatch = g.updates.dispatcher(id, i, h)
			}
		}
		if i > 0 {
			records[i-1].Next = h
		}
		records[i] = h
		if hd.Kind != "" {
			kinds = append(kinds, hd.Kind)
		}
	}
	if len(kinds) != len(hooks) {
		kinds = nil
	}
	return records[0], kinds
}

func (hd HookDoc) hasQueue() bool {
	switch hd.Kind {
	case "", "useState", "useReducer":
		return true
	}
	return false
}

func (hd HookDoc) value() any {
	if hd.Store == nil {
		return hd.Value
	}
	value := map[string]any{"store": &Store{state: hd.Store}}
	if hd.Kind == "useMemo" {
		return []any{value, []any{}}
	}
	return value
}

func (t *TypeDoc) elementType() *fiber.ElementType {
	if t == nil {
		return nil
	}
	et := &fiber.ElementType{
		Name:        t.Name,
		DisplayName: t.DisplayName,
		Render:      t.Render.elementType(),
		Result:      t.Result.elementType(),
		Source:      t.Source,
	}
	if t.Context != nil {
		et.Context = &fiber.Context{DisplayName: t.Context.DisplayName}
	}
	return et
}
