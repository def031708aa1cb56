package errors

import (
	"fmt"
)

// ParseError represents a props or token file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures token table or settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RegistryError indicates a handler registry that could not be assembled,
// such as two handlers claiming the same prop name.
type RegistryError struct {
	Prop    string
	Message string
	Err     error
}

// NewRegistryError constructs a RegistryError for the given prop name.
func NewRegistryError(prop string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistryError{Prop: prop, Message: message, Err: err}
}

func (e *RegistryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Prop != "" {
		return fmt.Sprintf("registry error [%s]: %s", e.Prop, e.Message)
	}
	return fmt.Sprintf("registry error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RegistryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
