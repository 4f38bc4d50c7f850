package classify

import "github.com/yndnr/snaptree-go/internal/core/fiber"

// Shape identifies component shapes whose props get a dedicated extractor.
type Shape int

const (
	ShapeGeneric Shape = iota
	// ShapeRouter is a router root; only location.pathname is kept.
	ShapeRouter
	// ShapeRenderedRoute is a matched route; only match.pathname is kept.
	ShapeRenderedRoute
)

var shapesByName = map[string]Shape{
	"Router":        ShapeRouter,
	"RenderedRoute": ShapeRenderedRoute,
}

// ShapeOf looks n up by its element type's own name. Resolved display
// names are deliberately not consulted.
func ShapeOf(n *fiber.Node) Shape {
	if n == nil || n.ElementType == nil {
		return ShapeGeneric
	}
	if s, ok := shapesByName[n.ElementType.Name]; ok {
		return s
	}
	return ShapeGeneric
}

func (s Shape) String() string {
	switch s {
	case ShapeRouter:
		return "router"
	case ShapeRenderedRoute:
		return "rendered-route"
	default:
		return "generic"
	}
}
