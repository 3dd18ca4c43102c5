// Package errs contains sentinel errors shared by the stores, services and
// handlers so that failures can be mapped to a status code in one place
package errs

import "errors"

var (
	// ErrValidation marks malformed input (password mismatch, bad email...)
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyExists marks a unique value that is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthenticated is returned when a request carries no usable identity
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound covers both missing rows and rows owned by someone else
	ErrNotFound = errors.New("not found")

	ErrLanguageNotFound = errors.New("language not found")

	// ErrGeneration wraps failures of the external text generator
	ErrGeneration = errors.New("text generation failed")
)
