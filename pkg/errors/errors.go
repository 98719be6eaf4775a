package errors

import (
	"fmt"
)

// ParseError represents a document parsing failure with optional line metadata.
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
		return fmt.Sprintf("cannot read editor document %s (line %d): %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("cannot read editor document %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and catalog validation issues.
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
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return "invalid editor document: " + e.Message
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownParameterError reports an edit submitted for a parameter identity
// the catalog does not declare. Callers must only submit edits for catalog
// parameters, so this always indicates a wiring bug.
type UnknownParameterError struct {
	ParamID int
}

// NewUnknownParameterError constructs an UnknownParameterError.
func NewUnknownParameterError(id int) error {
	return &UnknownParameterError{ParamID: id}
}

func (e *UnknownParameterError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown parameter %d: not declared in catalog", e.ParamID)
}
