package fiber

import (
	"slices"
	"sync"
)

// TagList is the list-like tag API of a rendered element.
type TagList interface {
	Len() int
	Item(i int) string
	Add(tag string)
	Remove(tag string)
}

// Taggable is a rendered element that exposes a TagList.
type Taggable interface {
	ClassList() TagList
}

// Element is a minimal rendered host element. Hosts that already have an
// element type only need to implement Taggable.
type Element struct {
	TagName string
	classes ClassList
}

// NewElement returns an element carrying the given classes.
func NewElement(tagName string, classes ...string) *Element {
	e := &Element{TagName: tagName}
	for _, c := range classes {
		e.classes.Add(c)
	}
	return e
}

// ClassList implements Taggable.
func (e *Element) ClassList() TagList {
	return &e.classes
}

// Classes returns a copy of the element's classes.
func (e *Element) Classes() []string {
	return e.classes.Values()
}

// ClassList is an ordered set of class tokens, safe for concurrent use.
type ClassList struct {
	mu     sync.Mutex
	tokens []string
}

func (c *ClassList) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tokens)
}

// Item returns the i-th token or "" when i is out of range.
func (c *ClassList) Item(i int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.tokens) {
		return ""
	}
	return c.tokens[i]
}

// Add appends tag unless it is already present.
func (c *ClassList) Add(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tag == "" || slices.Contains(c.tokens, tag) {
		return
	}
	c.tokens = append(c.tokens, tag)
}

func (c *ClassList) Remove(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = slices.DeleteFunc(c.tokens, func(t string) bool { return t == tag })
}

// Values returns a copy of the tokens in order.
func (c *ClassList) Values() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.tokens)
}
