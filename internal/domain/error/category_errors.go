// Package error defines domain-specific errors for the PennyFlow application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryInUse is returned when the block strategy refuses a deletion
	// because transactions still reference the category.
	ErrCategoryInUse = errors.New("category is referenced by existing transactions")

	// ErrInvalidStrategy is returned when an unrecognized deletion strategy token is supplied.
	ErrInvalidStrategy = errors.New("invalid deletion strategy")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidStrategy       CategoryErrorCode = "CAT-010002"

	// Deletion errors (02XXXX)
	ErrCodeCategoryInUse CategoryErrorCode = "CAT-020002"
)

// CategoryError represents a category error with code and message.
// AffectedCount carries the number of referencing transactions when the code
// is ErrCodeCategoryInUse, so callers can present it to the end user.
type CategoryError struct {
	Code          CategoryErrorCode
	Message       string
	AffectedCount int64
	Err           error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewCategoryInUseError creates a CategoryError carrying the count of
// transactions that would be affected by the refused deletion.
func NewCategoryInUseError(message string, affectedCount int64) *CategoryError {
	return &CategoryError{
		Code:          ErrCodeCategoryInUse,
		Message:       message,
		AffectedCount: affectedCount,
		Err:           ErrCategoryInUse,
	}
}
