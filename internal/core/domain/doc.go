// Package domain defines the error vocabulary of the snapshot engine.
//
// Every error the engine returns to a caller is a *DomainError with a
// stable code, grouped by area:
//
//   - BLD: snapshot builds
//   - EXT: state and context extraction
//   - REC: the mutator record store
//   - FIX: live tree fixture documents
//   - ARG: argument validation
//
// Extraction errors never escape Build; they are logged and the affected
// node degrades to having no hook state.
package domain
