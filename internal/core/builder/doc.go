// Package builder turns a live fiber tree into a snapshot tree.
//
// Build walks the live tree depth first from the given root: children
// with the node's output as their parent, siblings with the parent the
// node itself got. A visited set local to each call stops the walk at
// nodes reached twice, so cyclic trees terminate and every live node
// contributes at most one snapshot node.
//
// For each node the builder resolves a name, extracts props and context,
// saves state holders in the record store, and appends a snapshot node
// when the unit is stateful or explicitly stateless and not excluded by
// the framework filters. The exclusion filters are checked again at every
// extraction gate. Accepted units whose first child is a taggable element
// get a tag "<prefix><n>" in traversal order; older tags of the same
// scheme on that element are removed first.
//
// Extraction failures never fail a build. They are logged with the
// component name and leave that node without the failed state.
package builder
