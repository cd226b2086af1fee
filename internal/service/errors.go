package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNothingUpdated indicates that an update was accepted but the store
	// reported no changed row. The API answers with "Could not update!".
	ErrNothingUpdated = errors.New("nothing updated")
)

// SongServiceError is a custom error type for song service errors.
type SongServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for SongServiceError.
func (e *SongServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("song service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("song service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SongServiceError) Unwrap() error {
	return e.Err
}

// NewSongServiceError creates a new SongServiceError.
func NewSongServiceError(operation, message string, err error) *SongServiceError {
	return &SongServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// CatalogServiceError is a custom error type for country and genre lookups.
type CatalogServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CatalogServiceError.
func (e *CatalogServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("catalog service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CatalogServiceError) Unwrap() error {
	return e.Err
}

// NewCatalogServiceError creates a new CatalogServiceError.
func NewCatalogServiceError(operation, message string, err error) *CatalogServiceError {
	return &CatalogServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
