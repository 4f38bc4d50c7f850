// Package domain defines the error vocabulary shared by the snapshot engine.
package domain

import (
	"errors"
	"fmt"
)

// DomainError is an engine error carrying a stable code.
//
// Codes follow the format ST-<AREA>-<NNNN>; two errors with the same code
// compare equal under errors.Is regardless of details or cause.
type DomainError struct {
	Code    string // Error code (e.g., "ST-REC-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Build Errors (BLD)
// ============================================================================

var (
	// ErrNilRoot indicates Build was called without a live root.
	ErrNilRoot = NewDomainError("ST-BLD-4000", "live root is nil")

	// ErrBuildAborted indicates the caller's context ended before the build ran.
	ErrBuildAborted = NewDomainError("ST-BLD-4990", "build aborted")
)

// ============================================================================
// Extraction Errors (EXT)
// ============================================================================

var (
	// ErrMalformedHook indicates a chained-state entry whose queue cannot dispatch.
	ErrMalformedHook = NewDomainError("ST-EXT-4220", "malformed hook entry")

	// ErrHookChainCycle indicates a chained-state list that links back onto itself.
	ErrHookChainCycle = NewDomainError("ST-EXT-4221", "hook chain is cyclic")

	// ErrHookChainTooLong indicates the chain walk hit its iteration guard.
	ErrHookChainTooLong = NewDomainError("ST-EXT-4222", "hook chain exceeds limit")

	// ErrExtractionPanic indicates a payload accessor panicked during extraction.
	ErrExtractionPanic = NewDomainError("ST-EXT-5000", "extraction panicked")
)

// ============================================================================
// Record Store Errors (REC)
// ============================================================================

var (
	// ErrRecordNotFound indicates no mutator is stored under the index.
	ErrRecordNotFound = NewDomainError("ST-REC-4040", "record not found")

	// ErrNilMutator indicates an attempt to record a nil mutator.
	ErrNilMutator = NewDomainError("ST-REC-4000", "mutator is nil")
)

// ============================================================================
// Fixture Errors (FIX)
// ============================================================================

var (
	// ErrFixtureInvalid indicates a live tree document failed validation.
	ErrFixtureInvalid = NewDomainError("ST-FIX-4000", "invalid fixture")

	// ErrFixtureUnknownNode indicates a link to an id that is not declared.
	ErrFixtureUnknownNode = NewDomainError("ST-FIX-4040", "unknown fixture node")

	// ErrFixtureUnknownKind indicates a node tag that is not a known kind.
	ErrFixtureUnknownKind = NewDomainError("ST-FIX-4001", "unknown node kind")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("ST-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("ST-ARG-1002", "missing required argument")
)
