package hooknames

import (
	"context"
	"strconv"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// FallbackPrefix names hooks whose binding could not be recovered.
const FallbackPrefix = "state"

// Resolver maps a unit's source text to count hook names, positionally.
type Resolver interface {
	Resolve(source string, count int) []string
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(source string, count int) []string

func (f ResolverFunc) Resolve(source string, count int) []string {
	return f(source, count)
}

// stateHooks are the hooks whose first tuple element is the state value.
var stateHooks = map[string]bool{
	"useState":   true,
	"useReducer": true,
}

// Scanner parses a unit's source as JavaScript and finds its state hook
// bindings. It recognises array destructuring of useState and useReducer
// calls, and the `x = _useStateN[0]` form transpilers emit for them.
// Comments and string literals never match.
type Scanner struct{}

// Names returns the recovered binding names in source order. A binding
// whose first element is not a plain name is returned as "". Sources that
// cannot be parsed yield no names.
func (Scanner) Names(source string) []string {
	if source == "" {
		return nil
	}
	src := []byte(source)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil
	}
	defer tree.Close()

	s := &scan{src: src, tuples: make(map[string]bool)}
	s.walk(tree.RootNode())
	return s.names
}

// Resolve implements Resolver.
func (s Scanner) Resolve(source string, count int) []string {
	return Pad(s.Names(source), count)
}

type scan struct {
	src []byte
	// tuples holds variables bound to a state hook tuple, directly or
	// through a helper call such as _slicedToArray.
	tuples map[string]bool
	names  []string
}

func (s *scan) walk(n *sitter.Node) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "variable_declarator":
		s.bind(n.ChildByFieldName("name"), n.ChildByFieldName("value"))
	case "assignment_expression":
		s.bind(n.ChildByFieldName("left"), n.ChildByFieldName("right"))
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		s.walk(n.NamedChild(i))
	}
}

func (s *scan) bind(target, value *sitter.Node) {
	if target == nil || value == nil {
		return
	}
	switch target.Type() {
	case "array_pattern":
		if s.isStateCall(value) {
			s.names = append(s.names, s.firstElement(target))
		}
	case "identifier":
		name := target.Content(s.src)
		switch {
		case s.carriesTuple(value):
			s.tuples[name] = true
		case s.isFirstOfTuple(value):
			s.names = append(s.names, name)
		}
	}
}

// isStateCall reports whether n calls useState or useReducer, bare or as a
// member such as React.useState.
func (s *scan) isStateCall(n *sitter.Node) bool {
	if n.Type() != "call_expression" {
		return false
	}
	callee := n.ChildByFieldName("function")
	if callee == nil {
		return false
	}
	switch callee.Type() {
	case "identifier":
		return stateHooks[callee.Content(s.src)]
	case "member_expression":
		prop := callee.ChildByFieldName("property")
		return prop != nil && stateHooks[prop.Content(s.src)]
	}
	return false
}

// carriesTuple reports whether n is a state call, or a call passing one
// or a known tuple variable through.
func (s *scan) carriesTuple(n *sitter.Node) bool {
	if s.isStateCall(n) {
		return true
	}
	if n.Type() != "call_expression" {
		return false
	}
	args := n.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return false
	}
	first := args.NamedChild(0)
	if first.Type() == "identifier" {
		return s.tuples[first.Content(s.src)]
	}
	return s.isStateCall(first)
}

// isFirstOfTuple reports whether n is `t[0]` for a known tuple variable t.
func (s *scan) isFirstOfTuple(n *sitter.Node) bool {
	if n.Type() != "subscript_expression" {
		return false
	}
	obj, index := n.ChildByFieldName("object"), n.ChildByFieldName("index")
	if obj == nil || index == nil || obj.Type() != "identifier" {
		return false
	}
	return s.tuples[obj.Content(s.src)] && index.Content(s.src) == "0"
}

func (s *scan) firstElement(pattern *sitter.Node) string {
	// An elided first element, as in [, set], leaves a bare comma first.
	for i := 0; i < int(pattern.ChildCount()); i++ {
		c := pattern.Child(i)
		switch c.Type() {
		case "[":
			continue
		case "identifier":
			return c.Content(s.src)
		case "assignment_pattern":
			if left := c.ChildByFieldName("left"); left != nil && left.Type() == "identifier" {
				return left.Content(s.src)
			}
		}
		return ""
	}
	return ""
}

// Pad trims or extends names to count entries. Missing and empty entries
// become FallbackPrefix followed by their position.
func Pad(names []string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	out := make([]string, count)
	for i := range out {
		if i < len(names) && names[i] != "" {
			out[i] = names[i]
			continue
		}
		out[i] = FallbackPrefix + strconv.Itoa(i)
	}
	return out
}
