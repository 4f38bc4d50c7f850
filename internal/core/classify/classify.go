package classify

import (
	"github.com/yndnr/snaptree-go/internal/core/fiber"
	"github.com/yndnr/snaptree-go/internal/core/filter"
)

// Nameless is the name of a unit none of whose name sources is set.
const Nameless = "nameless"

// Class is the classifier's verdict for one node.
type Class int

const (
	// PassThrough nodes are structural (host elements, text, fragments...).
	// They never become snapshot nodes but their children are visited.
	PassThrough Class = iota
	// Excluded nodes are framework internals filtered by name.
	Excluded
	// StatefulDirect nodes expose a class-like state holder.
	StatefulDirect
	// StatefulChained nodes keep their state in a hook list.
	StatefulChained
	// Stateless nodes are component-like units with no extractable state.
	Stateless
)

func (c Class) String() string {
	switch c {
	case PassThrough:
		return "pass-through"
	case Excluded:
		return "excluded"
	case StatefulDirect:
		return "stateful-direct"
	case StatefulChained:
		return "stateful-chained"
	case Stateless:
		return "stateless"
	default:
		return "unknown"
	}
}

// Accepted reports whether nodes of this class become snapshot nodes.
func (c Class) Accepted() bool {
	return c == StatefulDirect || c == StatefulChained || c == Stateless
}

// ResolveName picks a display name for n from, in order: the provider's
// context display name, the lazy target's name, the render function's
// name, the element type's own name, and finally Nameless.
func ResolveName(n *fiber.Node) string {
	if n == nil || n.ElementType == nil {
		return Nameless
	}
	et := n.ElementType
	if et.Context != nil && et.Context.DisplayName != "" {
		return et.Context.DisplayName
	}
	if et.Result != nil && et.Result.Name != "" {
		return et.Result.Name
	}
	if et.Render != nil && et.Render.Name != "" {
		return et.Render.Name
	}
	if et.Name != "" {
		return et.Name
	}
	return Nameless
}

// Classify combines the predicates below into a single verdict. It is pure
// and must be called afresh for every node.
func Classify(n *fiber.Node, name string, f filter.Filters) Class {
	switch {
	case n == nil:
		return PassThrough
	case IsExcluded(name, f):
		return Excluded
	case HasDirectState(n):
		return StatefulDirect
	case HasChainedState(n):
		return StatefulChained
	case IsComponentLike(n.Tag):
		return Stateless
	default:
		return PassThrough
	}
}

// IsExcluded reports whether name is a known framework default.
func IsExcluded(name string, f filter.Filters) bool {
	return f.Excludes(name)
}

// IsComponentLike reports whether k is a unit kind that is snapshotted,
// stateless or not. Props are extracted for exactly these kinds.
func IsComponentLike(k fiber.Kind) bool {
	switch k {
	case fiber.FunctionComponent, fiber.ClassComponent,
		fiber.IndeterminateComponent, fiber.ContextProvider:
		return true
	}
	return false
}

// IsPropsBearing reports whether props are extracted for k.
func IsPropsBearing(k fiber.Kind) bool {
	return IsComponentLike(k)
}

// IsInstanceBearing reports whether k may hold a class-like instance.
func IsInstanceBearing(k fiber.Kind) bool {
	return k == fiber.ClassComponent || k == fiber.IndeterminateComponent
}

// IsHookBearing reports whether k may keep chained state.
func IsHookBearing(k fiber.Kind) bool {
	return k == fiber.FunctionComponent || k == fiber.IndeterminateComponent ||
		k == fiber.ContextProvider
}

// HasDirectState reports whether n exposes an instance with a defined state.
func HasDirectState(n *fiber.Node) bool {
	if n == nil || !IsInstanceBearing(n.Tag) {
		return false
	}
	inst, ok := n.Instance()
	if !ok {
		return false
	}
	_, defined := inst.State()
	return defined
}

// HasChainedState reports whether n carries a hook list whose head is a
// state hook.
func HasChainedState(n *fiber.Node) bool {
	if n == nil || !IsHookBearing(n.Tag) {
		return false
	}
	head := n.HeadHook()
	return head != nil && head.Queue != nil
}

// HasMemoizedValue reports whether n's chained state head is present. The
// head's own value may be nil or false and still counts.
func HasMemoizedValue(n *fiber.Node) bool {
	return n.HeadHook() != nil
}

// IsStoreProvider reports whether n is a function or class unit named
// "Provider", the shape store bindings use to hand down their context.
func IsStoreProvider(n *fiber.Node) bool {
	if n == nil || n.ElementType == nil {
		return false
	}
	if n.Tag != fiber.FunctionComponent && n.Tag != fiber.ClassComponent {
		return false
	}
	return n.ElementType.Name == "Provider"
}

// IsAnonymousContextProvider reports whether n provides a context that has
// no display name. Its value is read from props and it is shown as "Context".
func IsAnonymousContextProvider(n *fiber.Node) bool {
	if n == nil || n.Tag != fiber.ContextProvider {
		return false
	}
	et := n.ElementType
	return et == nil || et.Context == nil || et.Context.DisplayName == ""
}
