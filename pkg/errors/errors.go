// Package errors defines the error types novelstat returns.
//
// Loaders separate the conditions a report can recover from (a missing
// progress file is NotFound) from the ones it cannot (a declared file that
// is not valid JSON is a ParseError). Commands and tests check them with
// IsNotFound, IsValidationError and errors.As.
package errors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// New and As re-export the standard helpers so callers need one import.
var (
	New = errors.New
	As  = errors.As
)

// Sentinels matched by the typed errors below.
var (
	// ErrNotFound is matched by NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is matched by ValidationError.
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError reports a file or directory that does not exist.
type NotFoundError struct {
	Resource string // "progress file", "config file"
	Path     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Path)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, path string) *NotFoundError {
	return &NotFoundError{Resource: resource, Path: path}
}

// ValidationError reports an option or flag value that was rejected.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// Is matches ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConfigError reports configuration that could not be read or is
// inconsistent.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Component == "" {
		return "configuration error: " + e.Message
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError reports a declared file whose contents could not be decoded.
// Line and Column are 1-based and zero when unknown.
type ParseError struct {
	Format  string
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	case e.File != "":
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	default:
		return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapJSON wraps a decoding error for the JSON document data read from
// file. Syntax and type errors carry a byte offset, which is turned into a
// line and column.
func WrapJSON(file string, data []byte, err error) error {
	if err == nil {
		return nil
	}
	pe := &ParseError{Format: "json", File: file, Message: err.Error(), Err: err}

	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}
	if offset > 0 && offset <= int64(len(data)) {
		head := data[:offset]
		pe.Line = bytes.Count(head, []byte("\n")) + 1
		pe.Column = int(offset) - (bytes.LastIndexByte(head, '\n') + 1)
	}
	return pe
}

// IOError reports a failed filesystem operation.
type IOError struct {
	Operation string // "read", "list"
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps err as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether err is a rejected input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCanceled reports whether err comes from a cancelled context. The
// monitor treats it as a normal stop.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
