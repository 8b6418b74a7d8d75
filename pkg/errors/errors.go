// Package errors provides custom error types for the melodex system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

// Common sentinel errors for the melodex system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrEmptyName indicates that name cleanup produced an empty string
	ErrEmptyName = errors.New("empty name after cleanup")

	// ErrMalformedRecord indicates a source row missing required fields
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidArgument indicates that a caller-supplied parameter was out of domain
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSessionRequired indicates that a session token is required but not provided
	ErrSessionRequired = errors.New("session token required")

	// ErrServiceUnavailable indicates that the external platform is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")
)

// EmptyNameError records the raw input whose cleanup yielded an empty string.
type EmptyNameError struct {
	Raw string
}

// Error implements the error interface
func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("name %q is empty after cleanup", e.Raw)
}

// Is implements errors.Is support
func (e *EmptyNameError) Is(target error) bool {
	return target == ErrEmptyName
}

// NewEmptyNameError creates a new EmptyNameError
func NewEmptyNameError(raw string) *EmptyNameError {
	return &EmptyNameError{Raw: raw}
}

// MalformedRecordError describes a source row that cannot be used.
type MalformedRecordError struct {
	Source  string // "artists", "albums", "mapping", "exclude"
	Line    int
	Message string
}

// Error implements the error interface
func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed %s record at line %d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("malformed %s record: %s", e.Source, e.Message)
}

// Is implements errors.Is support
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// NewMalformedRecordError creates a new MalformedRecordError
func NewMalformedRecordError(source string, line int, message string) *MalformedRecordError {
	return &MalformedRecordError{Source: source, Line: line, Message: message}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml", "text"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s file %s at line %d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// FetchError represents an error from the external platform
type FetchError struct {
	Service    string
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch error from %s (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch error from %s: %s", e.Service, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FetchError) Is(target error) bool {
	if e.StatusCode >= 500 {
		return target == ErrServiceUnavailable
	}
	return false
}

// NewFetchError creates a new FetchError
func NewFetchError(service string, statusCode int, message string) *FetchError {
	return &FetchError{Service: service, StatusCode: statusCode, Message: message}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Message: err.Error(), Err: err}
}
