// Package errors provides the unified error type and factory functions for the
// Mizan-Intelligence document processing core.  Every failure that crosses the
// package boundary — unsupported formats, missing extraction backends, empty
// documents, unexpected internal faults — is carried by the same ProcessingError
// type so that callers (the ingestion service, the API error-reporting layer)
// have exactly one contract to handle.
package errors

import (
	"errors"
	"fmt"
)

// ProcessingError is the single structured error type used throughout the
// document processing core.  It satisfies the standard error interface and
// supports Go 1.13+ error wrapping so that errors.Is / errors.As / errors.Unwrap
// work transparently across all layers.
//
// Usage:
//
//	return errors.NewExtractionError(path, "unsupported file format: .xlsx")
//	return errors.NewUnexpectedError(path, "article extraction panicked", cause)
type ProcessingError struct {
	// Code is the typed error code that identifies the failure category.
	Code ErrorCode

	// Message is the primary human-readable description of the error, suitable
	// for inclusion in API responses returned to callers.
	Message string

	// Field optionally names the input field the error relates to (e.g.
	// "file_path"), for the caller's validation-style error reporting.
	Field string

	// DocumentPath is the path of the document being processed when the error
	// occurred.  It is always populated for traceability.
	DocumentPath string

	// Detail carries supplementary context (backend names, extensions, byte
	// counts) that aids debugging without leaking internals to end users.
	Detail string

	// Cause is the underlying error, enabling errors.Is / errors.As traversal
	// of the full chain.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message> (document=<path>): <detail>"
// The detail and document segments are omitted when empty.
func (e *ProcessingError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.DocumentPath != "" {
		msg += fmt.Sprintf(" (document=%s)", e.DocumentPath)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As to
// traverse the full error chain.
func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

// WithField returns a shallow copy of the receiver with Field set.
// It is safe to call on a nil pointer (returns nil).
func (e *ProcessingError) WithField(field string) *ProcessingError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Field = field
	return &clone
}

// WithDetail returns a shallow copy of the receiver with Detail set.
func (e *ProcessingError) WithDetail(detail string) *ProcessingError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// ─────────────────────────────────────────────────────────────────────────────
// Factory functions
// ─────────────────────────────────────────────────────────────────────────────

// NewExtractionError constructs a CodeExtraction ProcessingError.  Used for
// unsupported extensions, unavailable extraction backends, and corrupt or
// unreadable files — the root cause is discriminated by Detail/Cause, not by
// subclassing.
func NewExtractionError(documentPath, message string) *ProcessingError {
	return &ProcessingError{
		Code:         CodeExtraction,
		Message:      message,
		Field:        "file_path",
		DocumentPath: documentPath,
	}
}

// NewEmptyTextError constructs a CodeEmptyText ProcessingError, reported when
// extraction succeeded but produced no usable text.
func NewEmptyTextError(documentPath string) *ProcessingError {
	return &ProcessingError{
		Code:         CodeEmptyText,
		Message:      "document contains no extractable text",
		Field:        "file_path",
		DocumentPath: documentPath,
	}
}

// NewUnexpectedError wraps any other internal fault that occurred during
// processing.  The cause is preserved for errors.Is / errors.As but never
// leaked to API consumers directly.
func NewUnexpectedError(documentPath, message string, cause error) *ProcessingError {
	return &ProcessingError{
		Code:         CodeUnexpected,
		Message:      message,
		DocumentPath: documentPath,
		Cause:        cause,
	}
}

// Wrap converts err into a ProcessingError with the given code and message.
// If err is already a *ProcessingError it is returned unchanged so that the
// original classification and document path survive cross-layer propagation.
// Wrap returns nil when err is nil.
func Wrap(err error, code ErrorCode, documentPath, message string) *ProcessingError {
	if err == nil {
		return nil
	}
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe
	}
	return &ProcessingError{
		Code:         code,
		Message:      message,
		DocumentPath: documentPath,
		Cause:        err,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Error-chain inspection helpers
// ─────────────────────────────────────────────────────────────────────────────

// IsCode reports whether any error in err's chain is a *ProcessingError with
// the given code:
//
//	if errors.IsCode(err, errors.CodeEmptyText) { ... }
func IsCode(err error, code ErrorCode) bool {
	var pe *ProcessingError
	for err != nil {
		if errors.As(err, &pe) && pe.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the ErrorCode from the first *ProcessingError found in
// err's chain.  If none is present, CodeUnexpected is returned; a nil error
// yields CodeOK.  Useful in logging/metrics layers that need a single label.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeUnexpected
}

// DocumentPath extracts the document path from the first *ProcessingError in
// err's chain, or "" when none is present.
func DocumentPath(err error) string {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.DocumentPath
	}
	return ""
}
