// Package hooknames recovers the variable names bound to a unit's state
// hooks from the unit's declared source text.
//
// Resolution is best effort. A Resolver always returns exactly as many
// names as requested and falls back to "state<i>" for positions it could
// not name, so a mismatch between the source and the live hook list never
// fails a build.
package hooknames
