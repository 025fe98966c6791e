// Package errors provides structured error types for casegen.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the generator, CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Generation codes describe infeasible or malformed constraints and are
// raised by pkg/gen at the point of the offending call:
//   - INVALID_RANGE: min > max
//   - RANGE_TOO_SMALL: a unique array cannot fit in its value range
//   - TOO_MANY_EDGES: edge count above the structural maximum
//   - EMPTY_INPUT, SIZE_EXCEEDS_INPUT, INVALID_SIZE
//   - UNKNOWN_CONSTRAINT_TYPE, MISSING_PARAMETER, INVALID_PARAMETER
//
// The remaining codes are used by the collaborators around the generator
// (CLI, HTTP server, test case conversion).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRange, "min %d > max %d", min, max)
//	if errors.Is(err, errors.ErrCodeInvalidRange) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Generation error codes.
const (
	ErrCodeInvalidRange          Code = "INVALID_RANGE"
	ErrCodeRangeTooSmall         Code = "RANGE_TOO_SMALL"
	ErrCodeTooManyEdges          Code = "TOO_MANY_EDGES"
	ErrCodeEmptyInput            Code = "EMPTY_INPUT"
	ErrCodeSizeExceedsInput      Code = "SIZE_EXCEEDS_INPUT"
	ErrCodeInvalidSize           Code = "INVALID_SIZE"
	ErrCodeUnknownConstraintType Code = "UNKNOWN_CONSTRAINT_TYPE"
	ErrCodeMissingParameter      Code = "MISSING_PARAMETER"
	ErrCodeInvalidParameter      Code = "INVALID_PARAMETER"
)

// Collaborator error codes.
const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

var generationCodes = map[Code]bool{
	ErrCodeInvalidRange:          true,
	ErrCodeRangeTooSmall:         true,
	ErrCodeTooManyEdges:          true,
	ErrCodeEmptyInput:            true,
	ErrCodeSizeExceedsInput:      true,
	ErrCodeInvalidSize:           true,
	ErrCodeUnknownConstraintType: true,
	ErrCodeMissingParameter:      true,
	ErrCodeInvalidParameter:      true,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Annotate prefixes the message of err with context while keeping its code.
// Non-*Error values are wrapped with %w and returned as plain errors.
func Annotate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	prefix := fmt.Sprintf(format, args...)
	var e *Error
	if errors.As(err, &e) {
		return &Error{Code: e.Code, Message: prefix + ": " + e.Message, Cause: e.Cause}
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsGeneration reports whether err carries one of the generation codes,
// i.e. the caller supplied constraints that cannot be satisfied.
func IsGeneration(err error) bool {
	return generationCodes[GetCode(err)]
}

// IsClient reports whether err was caused by caller input rather than an
// internal failure: any generation code, or INVALID_INPUT / INVALID_FORMAT /
// INVALID_PATH.
func IsClient(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidPath:
		return true
	}
	return IsGeneration(err)
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
