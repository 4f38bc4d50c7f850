package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/snaptree-go/internal/core/domain"
	"github.com/yndnr/snaptree-go/internal/core/fiber"
)

// Document is the decoded form of a live tree document.
type Document struct {
	Root  string    `yaml:"root"`
	Nodes []NodeDoc `yaml:"nodes"`
}

// NodeDoc describes one live node.
type NodeDoc struct {
	ID      string        `yaml:"id"`
	Kind    string        `yaml:"kind"`
	Child   string        `yaml:"child,omitempty"`
	Sibling string        `yaml:"sibling,omitempty"`
	Type    *TypeDoc      `yaml:"type,omitempty"`
	Props   any           `yaml:"props,omitempty"`
	Timing  *fiber.Timing `yaml:"timing,omitempty"`

	// Instance makes the node's StateNode a class-like instance.
	Instance *InstanceDoc `yaml:"instance,omitempty"`
	// Hooks becomes the node's chained state list, in order.
	Hooks []HookDoc `yaml:"hooks,omitempty"`
	// Element makes the node's StateNode a rendered element.
	Element *ElementDoc `yaml:"element,omitempty"`
}

// TypeDoc mirrors fiber.ElementType.
type TypeDoc struct {
	Name        string      `yaml:"name,omitempty"`
	DisplayName string      `yaml:"displayName,omitempty"`
	Render      *TypeDoc    `yaml:"render,omitempty"`
	Context     *ContextDoc `yaml:"context,omitempty"`
	Result      *TypeDoc    `yaml:"result,omitempty"`
	Source      string      `yaml:"source,omitempty"`
}

// ContextDoc mirrors fiber.Context. An empty mapping declares an
// anonymous context.
type ContextDoc struct {
	DisplayName string `yaml:"displayName,omitempty"`
}

// InstanceDoc is a class-like state holder. Its state is defined, even
// when null, unless Undefined is set.
type InstanceDoc struct {
	State     any  `yaml:"state"`
	Undefined bool `yaml:"undefined,omitempty"`
}

// HookDoc is one chained state record.
//
// State and reducer hooks (and hooks with no kind) get an update queue;
// other kinds do not. Store wraps its value in a store whose GetState
// returns it, the way store bindings pass their store down. Broken leaves
// the queue without a dispatch function.
type HookDoc struct {
	Kind   string `yaml:"kind,omitempty"`
	Value  any    `yaml:"value"`
	Store  any    `yaml:"store,omitempty"`
	Broken bool   `yaml:"broken,omitempty"`
}

// ElementDoc is a rendered element and its current classes.
type ElementDoc struct {
	Tag     string   `yaml:"tag"`
	Classes []string `yaml:"classes,omitempty"`
}

// Decode parses a YAML or JSON document. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrFixtureInvalid.WithDetails("empty document")
		}
		return nil, domain.ErrFixtureInvalid.WithCause(err)
	}
	return &doc, nil
}

// Parse decodes data and builds its graph.
func Parse(data []byte) (*Graph, error) {
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return doc.Graph()
}

// Load reads and builds the document at path.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return g, nil
}
