// Package output renders snapshot trees and record listings for the CLI.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: tablewriter tables
//   - tree.go: snapshot tree and record rows
//   - json.go, yaml.go: machine-readable output
package output
