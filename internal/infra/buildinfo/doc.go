// Package buildinfo exposes the version of the snaptree binary.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/snaptree-go/internal/infra/buildinfo.Version=v0.3.0"
//
// GoVersion and the module version fall back to the values recorded by
// the toolchain in the binary.
package buildinfo
