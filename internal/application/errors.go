package application

import (
	"errors"
	"fmt"

	"pobsd/internal/parser"
)

// Sentinel errors for common conditions
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidID         = errors.New("invalid ID")
	ErrInvalidAttribute  = errors.New("invalid attribute")
	ErrMalformedDatabase = parser.ErrMalformed
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a lookup that matched nothing
type NotFoundError struct {
	What string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.What, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LoadError wraps a failure to read a database source
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
