// Package record provides the mutator record store.
//
// The store maps integer indices to the mutators of live state holders.
// Snapshot nodes carry these indices so a later replay can call SetState
// on the right holder. Indices are issued 0, 1, 2, ... by a single atomic
// counter and are never reused while the store lives.
//
// Reset drops every entry and starts a new generation. Indices issued in
// an earlier generation are meaningless afterwards, even when the same
// number is issued again.
//
// Thread Safety:
//
// All operations are safe for concurrent use. Concurrent builds sharing a
// store never receive the same index.
package record
