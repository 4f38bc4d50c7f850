// Package confloader loads configuration from YAML files, environment
// variables and maps using koanf, and watches files for changes with
// fsnotify.
//
// Priority (highest to lowest):
//
//  1. Maps loaded with LoadMap after Load (command-line flags)
//  2. Environment variables
//  3. Configuration file
//  4. Values already present in the target struct (defaults)
//
// Environment variables use a double underscore between sections and a
// single underscore inside a key: SNAPTREE_SNAPSHOT__MAX_DEPTH sets
// snapshot.max_depth.
package confloader
