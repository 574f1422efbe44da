// Package errors provides a lightweight structured error type (RagplanError)
// for category-based classification in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a ragplan error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Generation and output errors
	CategoryDocument   ErrorCategory = "document"
	CategoryRender     ErrorCategory = "render"
	CategoryStorage    ErrorCategory = "storage"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// RagplanError is a structured error with category, severity, and context
type RagplanError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for RagplanError
type ContextFields map[string]any

// Error implements the error interface
func (e *RagplanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *RagplanError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *RagplanError) WithContext(key string, value any) *RagplanError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new RagplanError
func New(category ErrorCategory, severity ErrorSeverity, message string) *RagplanError {
	return &RagplanError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new RagplanError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *RagplanError {
	return &RagplanError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if re, ok := err.(*RagplanError); ok {
		return re.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a RagplanError
func GetCategory(err error) ErrorCategory {
	if re, ok := err.(*RagplanError); ok {
		return re.Category
	}
	return CategoryInternal
}
