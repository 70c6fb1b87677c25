// Package errors provides custom error types for the taxamark system.
// These errors enable programmatic error checking with errors.Is and
// errors.As while keeping messages readable for CLI users.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are the standard library functions, re-exported so callers
// importing this package need not also import the standard one.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the taxamark system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownRank indicates a taxon rank missing from the rank table
	ErrUnknownRank = errors.New("unknown rank")

	// ErrBudgetTooSmall indicates a length budget that cannot hold even the
	// shortest truncation placeholder
	ErrBudgetTooSmall = errors.New("length budget too small")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// UnknownRankError reports a rank that has no level in the rank table.
// Formatting never falls back to a default level for such a rank.
type UnknownRankError struct {
	Rank  string
	Taxon string
}

// Error implements the error interface
func (e *UnknownRankError) Error() string {
	if e.Taxon != "" {
		return fmt.Sprintf("unknown rank %q for taxon %s", e.Rank, e.Taxon)
	}
	return fmt.Sprintf("unknown rank %q", e.Rank)
}

// Is implements errors.Is support
func (e *UnknownRankError) Is(target error) bool {
	return target == ErrUnknownRank || target == ErrInvalidInput
}

// NewUnknownRankError creates a new UnknownRankError
func NewUnknownRankError(rank, taxon string) *UnknownRankError {
	return &UnknownRankError{Rank: rank, Taxon: taxon}
}

// BudgetError reports a truncation budget too small for the placeholder.
type BudgetError struct {
	MaxLen      int
	Available   int
	Placeholder string
}

// Error implements the error interface
func (e *BudgetError) Error() string {
	return fmt.Sprintf("max length %d leaves %d characters, too few for %q",
		e.MaxLen, e.Available, e.Placeholder)
}

// Is implements errors.Is support
func (e *BudgetError) Is(target error) bool {
	return target == ErrBudgetTooSmall
}

// NewBudgetError creates a new BudgetError
func NewBudgetError(maxLen, available int, placeholder string) *BudgetError {
	return &BudgetError{MaxLen: maxLen, Available: available, Placeholder: placeholder}
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
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
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
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open"
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

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownRank checks if an error reports an undefined rank
func IsUnknownRank(err error) bool {
	return errors.Is(err, ErrUnknownRank)
}

// IsBudgetTooSmall checks if an error reports an unusable length budget
func IsBudgetTooSmall(err error) bool {
	return errors.Is(err, ErrBudgetTooSmall)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
