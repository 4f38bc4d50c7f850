// Package command defines the snaptree CLI using urfave/cli/v2:
//
//   - root.go: App, global flags, configuration and logger setup
//   - build.go: build a snapshot from a fixture once
//   - watch.go: rebuild on fixture or configuration changes
//   - version.go: build information
package command
