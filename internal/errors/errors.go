// Package errors provides structured error types for wavectl with
// user-friendly messages and actionable suggestions.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for different failure categories.
const (
	// ErrConfig indicates a configuration problem (missing file, bad YAML,
	// invalid values).
	ErrConfig = "CONFIG"

	// ErrAPI indicates a portal API problem (unreachable, bad response,
	// rejected token).
	ErrAPI = "API"

	// ErrProject indicates a problem with the project directory itself
	// (missing path, not a directory).
	ErrProject = "PROJECT"
)

// Error is a structured error with a code, message, and optional suggestion.
type Error struct {
	// Code categorizes the error (CONFIG, API, PROJECT).
	Code string

	// Message is the primary user-facing description.
	Message string

	// Suggestion tells the user how to fix the problem.
	Suggestion string

	// Cause is the underlying error, if any.
	Cause error
}

// New creates a structured error with a code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message. The code defaults to ErrAPI
// since most wrapped errors come from portal requests.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrAPI,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an error with a specific code and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error formats the error for terminal display:
//
//	✗ message
//
//	  cause (if present)
//
//	  suggestion (if present)
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks whether err is a structured Error with the given code.
func IsCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
