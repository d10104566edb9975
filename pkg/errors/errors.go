package errors

import (
	"errors"
	"fmt"
)

// Sentinel kinds for errors.Is checks.
var (
	ErrInvalidPreference      = errors.New("invalid theme preference")
	ErrContextMissing         = errors.New("context missing")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures variant definition and configuration issues.
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

// InvalidPreferenceError reports a rejected theme preference. State is left unchanged.
type InvalidPreferenceError struct {
	Value string
}

// NewInvalidPreferenceError constructs an InvalidPreferenceError for the rejected value.
func NewInvalidPreferenceError(value string) error {
	return &InvalidPreferenceError{Value: value}
}

func (e *InvalidPreferenceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid theme preference %q: want light, dark or system", e.Value)
}

// Is reports whether target is ErrInvalidPreference.
func (e *InvalidPreferenceError) Is(target error) bool {
	return target == ErrInvalidPreference
}

// ContextMissingError signals a lookup outside any enclosing binding.
// It is a composition bug in the caller and is never recovered locally.
type ContextMissingError struct {
	Resource string
}

// NewContextMissingError constructs a ContextMissingError for the named resource.
func NewContextMissingError(resource string) error {
	return &ContextMissingError{Resource: resource}
}

func (e *ContextMissingError) Error() string {
	if e == nil {
		return ""
	}
	if e.Resource != "" {
		return fmt.Sprintf("%s requested outside of a provider binding", e.Resource)
	}
	return "requested outside of a provider binding"
}

// Is reports whether target is ErrContextMissing.
func (e *ContextMissingError) Is(target error) bool {
	return target == ErrContextMissing
}

// PersistenceError wraps a durable storage failure.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

// NewPersistenceError constructs a PersistenceError for the given operation and key.
func NewPersistenceError(op, key string, err error) error {
	return &PersistenceError{Op: op, Key: key, Err: err}
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("persistence %s [%s]: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *PersistenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is ErrPersistenceUnavailable.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceUnavailable
}
