// Package classify decides what a live node contributes to a snapshot.
//
// Everything here is a pure function of the node, its resolved name and the
// exclusion sets. The builder re-evaluates the exclusion predicate at each
// extraction gate rather than relying on a single Classify call.
package classify
