// Package apperror holds the error taxonomy shared by the usecases and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a request that is missing a required field or carries a bad value.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks an id-addressed entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUpload marks a failure of the media host.
	ErrUpload = errors.New("upload error")
	// ErrConflict marks an operation refused because of existing references.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized marks missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Upload wraps a media host failure so both ErrUpload and the cause stay matchable.
func Upload(filename string, cause error) error {
	return &UploadError{Filename: filename, Err: cause}
}

// UploadError reports which image of a batch the media host rejected.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("upload error: %v", e.Err)
	}
	return fmt.Sprintf("upload error: %s: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() []error {
	return []error{ErrUpload, e.Err}
}
