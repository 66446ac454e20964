package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCourseNotFound indicates the searched course does not exist.
	ErrCourseNotFound = errors.New("course not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown module type was asked
	// for sub-content. Scanning treats it as a silent skip.
	ErrUnsupportedType = errors.New("unsupported module type")
)
