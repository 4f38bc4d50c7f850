// Package config defines the snaptree configuration.
//
//   - spec.go: Config struct definition
//   - default.go: default values
//   - verify.go: validation
//
// Configuration is loaded through internal/infra/confloader from a YAML
// file, SNAPTREE_ environment variables and command-line flags.
package config
