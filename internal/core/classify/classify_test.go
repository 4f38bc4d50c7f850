package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yndnr/snaptree-go/internal/core/fiber"
	"github.com/yndnr/snaptree-go/internal/core/filter"
)

type holder struct {
	state   any
	defined bool
}

func (h *holder) SetState(v any)     { h.state = v }
func (h *holder) State() (any, bool) { return h.state, h.defined }

func TestResolveName(t *testing.T) {
	tests := []struct {
		name string
		et   *fiber.ElementType
		want string
	}{
		{"nil type", nil, Nameless},
		{"empty type", &fiber.ElementType{}, Nameless},
		{"direct name", &fiber.ElementType{Name: "Board"}, "Board"},
		{"render beats name", &fiber.ElementType{Name: "Fwd", Render: &fiber.ElementType{Name: "Input"}}, "Input"},
		{"lazy beats render", &fiber.ElementType{
			Render: &fiber.ElementType{Name: "Input"},
			Result: &fiber.ElementType{Name: "Page"},
		}, "Page"},
		{"context beats all", &fiber.ElementType{
			Name:    "Provider",
			Context: &fiber.Context{DisplayName: "ThemeContext"},
			Result:  &fiber.ElementType{Name: "Page"},
		}, "ThemeContext"},
		{"empty context falls through", &fiber.ElementType{
			Name:    "Provider",
			Context: &fiber.Context{},
		}, "Provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveName(&fiber.Node{ElementType: tt.et}))
		})
	}
	assert.Equal(t, Nameless, ResolveName(nil))
}

func TestClassify(t *testing.T) {
	f := filter.Default()
	queue := &fiber.Queue{Dispatch: func(any) {}}

	tests := []struct {
		name string
		node *fiber.Node
		want Class
	}{
		{"host element", &fiber.Node{Tag: fiber.HostComponent}, PassThrough},
		{"text", &fiber.Node{Tag: fiber.HostText}, PassThrough},
		{"excluded by name", &fiber.Node{
			Tag:         fiber.FunctionComponent,
			ElementType: &fiber.ElementType{Name: "ReactDevOverlay"},
		}, Excluded},
		{"class with state", &fiber.Node{
			Tag:       fiber.ClassComponent,
			StateNode: &holder{state: map[string]any{"count": 0}, defined: true},
		}, StatefulDirect},
		{"class with null state", &fiber.Node{
			Tag:       fiber.ClassComponent,
			StateNode: &holder{state: nil, defined: true},
		}, StatefulDirect},
		{"class without state", &fiber.Node{
			Tag:       fiber.ClassComponent,
			StateNode: &holder{},
		}, Stateless},
		{"function with instance is not direct", &fiber.Node{
			Tag:       fiber.FunctionComponent,
			StateNode: &holder{defined: true},
		}, Stateless},
		{"function with hooks", &fiber.Node{
			Tag:           fiber.FunctionComponent,
			MemoizedState: &fiber.Hook{Queue: queue},
		}, StatefulChained},
		{"function with effect hook only", &fiber.Node{
			Tag:           fiber.FunctionComponent,
			MemoizedState: &fiber.Hook{},
		}, Stateless},
		{"class never chained", &fiber.Node{
			Tag:           fiber.ClassComponent,
			MemoizedState: &fiber.Hook{Queue: queue},
		}, Stateless},
		{"context provider", &fiber.Node{Tag: fiber.ContextProvider}, Stateless},
		{"memo is structural", &fiber.Node{Tag: fiber.MemoComponent}, PassThrough},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.node, ResolveName(tt.node), f)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestClass_Accepted(t *testing.T) {
	assert.True(t, Stateless.Accepted())
	assert.True(t, StatefulDirect.Accepted())
	assert.True(t, StatefulChained.Accepted())
	assert.False(t, Excluded.Accepted())
	assert.False(t, PassThrough.Accepted())
}

func TestProviderPredicates(t *testing.T) {
	store := &fiber.Node{Tag: fiber.FunctionComponent, ElementType: &fiber.ElementType{Name: "Provider"}}
	assert.True(t, IsStoreProvider(store))
	assert.False(t, IsAnonymousContextProvider(store))

	anon := &fiber.Node{Tag: fiber.ContextProvider, ElementType: &fiber.ElementType{Context: &fiber.Context{}}}
	assert.True(t, IsAnonymousContextProvider(anon))
	assert.False(t, IsStoreProvider(anon))

	named := &fiber.Node{Tag: fiber.ContextProvider, ElementType: &fiber.ElementType{
		Context: &fiber.Context{DisplayName: "Theme"},
	}}
	assert.False(t, IsAnonymousContextProvider(named))
}

func TestShapeOf(t *testing.T) {
	assert.Equal(t, ShapeRouter, ShapeOf(&fiber.Node{ElementType: &fiber.ElementType{Name: "Router"}}))
	assert.Equal(t, ShapeRenderedRoute, ShapeOf(&fiber.Node{ElementType: &fiber.ElementType{Name: "RenderedRoute"}}))
	assert.Equal(t, ShapeGeneric, ShapeOf(&fiber.Node{ElementType: &fiber.ElementType{Name: "Routes"}}))
	// The lookup uses the type's own name, not the resolved display name.
	assert.Equal(t, ShapeGeneric, ShapeOf(&fiber.Node{ElementType: &fiber.ElementType{
		Render: &fiber.ElementType{Name: "Router"},
	}}))
	assert.Equal(t, ShapeGeneric, ShapeOf(nil))
}
