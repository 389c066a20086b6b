// Package error defines domain-specific errors for the PennyFlow application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidMonth is returned when a budget month is not in YYYY-MM form.
	ErrInvalidMonth = errors.New("invalid month format")

	// ErrInvalidBudgetAmount is returned when a budget amount is negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must not be negative")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth        BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BUD-010002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
