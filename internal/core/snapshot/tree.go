package snapshot

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// TreeIDPrefix starts every tree ID.
const TreeIDPrefix = "snap-"

// RootName is the name of the synthetic top-level node.
const RootName = "root"

// Tree is the result of one build.
type Tree struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	Root      *Node     `json:"root" yaml:"root"`
}

// NewTree returns a tree holding only the synthetic root.
func NewTree(now time.Time) (*Tree, error) {
	id, err := GenerateTreeID(now)
	if err != nil {
		return nil, err
	}
	return &Tree{
		ID:        id,
		CreatedAt: now,
		Root:      NewNode(RootName, Root(), NewData(), ""),
	}, nil
}

// GenerateTreeID returns snap-{ulid_lowercase}, 31 characters in total.
func GenerateTreeID(now time.Time) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(now), entropy)
	if err != nil {
		return "", err
	}
	return TreeIDPrefix + strings.ToLower(id.String()), nil
}

// IsValidTreeID checks the prefix and the ULID part of id.
func IsValidTreeID(id string) bool {
	if !strings.HasPrefix(id, TreeIDPrefix) || len(id) != len(TreeIDPrefix)+ulid.EncodedSize {
		return false
	}
	_, err := ulid.ParseStrict(strings.ToUpper(id[len(TreeIDPrefix):]))
	return err == nil
}

// Walk visits every node depth-first, parents before children, starting
// at the root with depth 0. Returning false from fn skips that node's
// children.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	if t == nil || t.Root == nil {
		return
	}
	walk(t.Root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Count returns the number of nodes, the synthetic root included.
func (t *Tree) Count() int {
	count := 0
	t.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Row is a node flattened with its position in the tree.
type Row struct {
	Depth int
	// Path joins the names from the root's first child down to the node.
	Path string
	Node *Node
}

// Flatten lists the nodes below the root in Walk order.
func (t *Tree) Flatten() []Row {
	var rows []Row
	var path []string
	t.Walk(func(n *Node, depth int) bool {
		if depth == 0 {
			return true
		}
		path = append(path[:depth-1], n.Name)
		rows = append(rows, Row{Depth: depth, Path: strings.Join(path, "/"), Node: n})
		return true
	})
	return rows
}

// Find returns the first node named name in Walk order, or nil.
func (t *Tree) Find(name string) *Node {
	var found *Node
	t.Walk(func(n *Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}
