// Package logger provides structured logging for snaptree.
//
// It wraps log/slog behind a small Logger interface:
//
//   - logger.go: handler setup, dynamic level, process-wide default
//   - context.go: logger and build/tree ID propagation through context
//   - redact.go: masking of sensitive attribute values
//
// Output is JSON by default; "text" selects slog's text handler.
package logger
