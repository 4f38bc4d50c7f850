// Package snapshot defines the output of a build: an immutable n-ary tree
// of snapshot nodes, independent of the live tree's memory layout.
//
// A Tree is created fresh by every build and handed off whole. Nothing in
// this package mutates a tree after the builder returns it.
package snapshot
