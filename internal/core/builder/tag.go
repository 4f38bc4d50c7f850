package builder

import (
	"strconv"

	"github.com/yndnr/snaptree-go/internal/core/fiber"
)

// tagger hands out traversal-order tags for one build.
type tagger struct {
	prefix string
	next   int
}

// apply tags the element rendered by n, if any, and returns the tag. The
// counter only advances once the tag is in place.
func (t *tagger) apply(n *fiber.Node) (string, bool) {
	el, ok := n.Taggable()
	if !ok {
		return "", false
	}
	list := el.ClassList()
	tag := t.prefix + strconv.Itoa(t.next)

	RemoveOwnTags(list, t.prefix)
	list.Add(tag)
	t.next++
	return tag, true
}

// RemoveOwnTags removes every tag made of prefix followed by digits.
// Other tags are left alone.
func RemoveOwnTags(list fiber.TagList, prefix string) {
	for i := list.Len() - 1; i >= 0; i-- {
		if tag := list.Item(i); IsOwnTag(tag, prefix) {
			list.Remove(tag)
		}
	}
}

// IsOwnTag reports whether tag is prefix followed by one or more digits.
func IsOwnTag(tag, prefix string) bool {
	if len(tag) <= len(prefix) || tag[:len(prefix)] != prefix {
		return false
	}
	for _, c := range tag[len(prefix):] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
