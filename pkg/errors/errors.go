package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound indicates that a key is not present in a JSON object
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange indicates that a JSON array index is outside the array
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTypeMismatch indicates that a value is not of the requested JSON kind
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidBasePath indicates that a flatten base path does not resolve to an array
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrInvalidInput indicates that flatten was given something other than a list of records
	ErrInvalidInput = errors.New("invalid input")

	// ErrMaxDepthExceeded indicates that a value nests deeper than allowed
	ErrMaxDepthExceeded = errors.New("max depth exceeded")

	// ErrScript indicates that a JavaScript callback failed to compile or run
	ErrScript = errors.New("script error")
)

// Error codes carried by *Error.
const (
	CodeKeyNotFound      = "KEY_NOT_FOUND"
	CodeIndexOutOfRange  = "INDEX_OUT_OF_RANGE"
	CodeTypeMismatch     = "TYPE_MISMATCH"
	CodeInvalidBasePath  = "INVALID_BASE_PATH"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeMaxDepthExceeded = "MAX_DEPTH_EXCEEDED"
	CodeScript           = "SCRIPT_ERROR"
)

// Error represents a structured jsj error
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new jsj error
func NewError(code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// KeyNotFound builds the error returned for a missing object key.
func KeyNotFound(key string) *Error {
	return NewError(CodeKeyNotFound, fmt.Sprintf("no key %q", key), ErrKeyNotFound)
}

// IndexOutOfRange builds the error returned for an array index outside [0, length).
func IndexOutOfRange(index, length int) *Error {
	return NewError(CodeIndexOutOfRange, fmt.Sprintf("index %d with length %d", index, length), ErrIndexOutOfRange)
}

// TypeMismatch builds the error returned when a value is not of the wanted kind.
func TypeMismatch(key, want string, got any) *Error {
	return NewError(CodeTypeMismatch, fmt.Sprintf("key %q: want %s, got %T", key, want, got), ErrTypeMismatch)
}

// InvalidBasePath builds a flatten base path error.
func InvalidBasePath(message string) *Error {
	return NewError(CodeInvalidBasePath, message, ErrInvalidBasePath)
}

// InvalidInput builds a flatten input error.
func InvalidInput(message string) *Error {
	return NewError(CodeInvalidInput, message, ErrInvalidInput)
}

// MaxDepthExceeded builds the error returned when nesting exceeds limit.
func MaxDepthExceeded(limit int) *Error {
	return NewError(CodeMaxDepthExceeded, fmt.Sprintf("nesting deeper than %d", limit), ErrMaxDepthExceeded)
}

// Script wraps a JavaScript failure. The JS message is kept as the error message.
func Script(message string) *Error {
	return NewError(CodeScript, message, ErrScript)
}

// IsKeyNotFound checks if an error is a missing key error
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsInvalidBasePath checks if an error is a flatten base path error
func IsInvalidBasePath(err error) bool {
	return errors.Is(err, ErrInvalidBasePath)
}

// IsInvalidInput checks if an error is a flatten input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}
