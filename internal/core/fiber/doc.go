// Package fiber models the host runtime's live component tree.
//
// The types here describe data the engine does not own:
//
//   - Node: one unit of the live tree, linked by Child and Sibling
//   - Hook / Queue: the chained state list of hook-using units
//   - Instance / Mutator: state holders that can be replayed later
//   - Taggable / TagList: rendered elements that can carry correlation tags
//
// Links may form cycles. Nothing in this package walks Child or Sibling;
// traversal with a visited set lives in the builder.
package fiber
