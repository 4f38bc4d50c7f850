// Command snaptree builds snapshot trees from live tree documents.
//
// It builds once and prints the tree (build), keeps rebuilding as the
// document or configuration changes (watch), or prints build information
// (version). See internal/cli/command for the flags.
package main
