package errors

import "net/http"

// ErrorCode is a string representation of a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Document processing error codes.  The taxonomy is deliberately small: one
// error kind discriminated by code, not a subclass per failure mode.
const (
	// CodeOK is returned by GetCode for nil errors; never attached to an error.
	CodeOK ErrorCode = "OK"

	// CodeExtraction covers unsupported extensions, missing extraction
	// backends, and corrupt or unreadable files.
	CodeExtraction ErrorCode = "DOC_001"

	// CodeEmptyText means extraction succeeded but produced no usable text.
	CodeEmptyText ErrorCode = "DOC_002"

	// CodeUnexpected wraps any other internal fault during processing.
	CodeUnexpected ErrorCode = "DOC_003"
)

// HTTPStatus maps an error code to the HTTP status the caller's
// error-reporting layer should respond with.  The mapping lives here so every
// transport surface of the wider platform translates codes identically.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeExtraction, CodeEmptyText:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
