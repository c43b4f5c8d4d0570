// Package errhandling provides error types and classification for job execution.
// Reading the raw list and writing the curated list are the only fallible
// operations; every failure is fatal and a run is simply restarted from
// scratch, so classification drives reporting and exit codes, not retries.
package errhandling

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCategory represents the type/category of an error.
type ErrorCategory string

// Error categories for classification.
const (
	// CategoryNotFound represents a missing input file or directory.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryPermission represents a file that cannot be opened or created
	// with the current permissions.
	CategoryPermission ErrorCategory = "permission"

	// CategoryIO represents read/write failures on an open file.
	CategoryIO ErrorCategory = "io"

	// CategoryConfig represents invalid job configuration.
	CategoryConfig ErrorCategory = "config"

	// CategoryCanceled represents a run interrupted by its context.
	CategoryCanceled ErrorCategory = "canceled"

	// CategoryUnknown represents unclassified errors.
	CategoryUnknown ErrorCategory = "unknown"
)

// ErrConfig marks errors caused by an invalid job definition.
var ErrConfig = errors.New("invalid job configuration")

// ClassifiedError wraps an error with classification metadata.
type ClassifiedError struct {
	// Category is the error classification category.
	Category ErrorCategory

	// Path is the file involved, when known.
	Path string

	// Message is a human-readable error message.
	Message string

	// OriginalErr is the underlying error that was classified.
	OriginalErr error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error (%s): %s", e.Category, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

// Unwrap returns the original error for use with errors.Is and errors.As.
func (e *ClassifiedError) Unwrap() error {
	return e.OriginalErr
}

// ClassifyError classifies any error into a ClassifiedError.
// Already classified errors are returned unchanged.
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return &ClassifiedError{
			Category: CategoryUnknown,
			Message:  "nil error",
		}
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	result := &ClassifiedError{
		Category:    CategoryUnknown,
		Message:     err.Error(),
		OriginalErr: err,
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		result.Path = pathErr.Path
		result.Category = CategoryIO
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		result.Category = CategoryCanceled
	case errors.Is(err, fs.ErrNotExist):
		result.Category = CategoryNotFound
	case errors.Is(err, fs.ErrPermission):
		result.Category = CategoryPermission
	case errors.Is(err, ErrConfig):
		result.Category = CategoryConfig
	}

	return result
}

// GetErrorCategory returns the error category for a given error.
// Returns CategoryUnknown for nil errors.
func GetErrorCategory(err error) ErrorCategory {
	if err == nil {
		return CategoryUnknown
	}
	return ClassifyError(err).Category
}

// IsFatal reports whether err should terminate the run. Every non-nil error
// is fatal: there is no retry policy and no partial-failure semantics.
func IsFatal(err error) bool {
	return err != nil
}

// NewNotFoundError creates a classified not-found error for path.
func NewNotFoundError(path string, originalErr error) *ClassifiedError {
	return &ClassifiedError{
		Category:    CategoryNotFound,
		Path:        path,
		Message:     "file does not exist",
		OriginalErr: originalErr,
	}
}

// NewIOError creates a classified I/O error for path.
func NewIOError(path, message string, originalErr error) *ClassifiedError {
	return &ClassifiedError{
		Category:    CategoryIO,
		Path:        path,
		Message:     message,
		OriginalErr: originalErr,
	}
}

// NewConfigError creates a classified configuration error.
func NewConfigError(message string) *ClassifiedError {
	return &ClassifiedError{
		Category:    CategoryConfig,
		Message:     message,
		OriginalErr: ErrConfig,
	}
}
