// Package error defines domain-specific errors for the PennyFlow application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found or is already inactive.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountDeactivated is returned when login is attempted against a deactivated account.
	ErrAccountDeactivated = errors.New("this account is deactivated, please contact support")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
)

// UserErrorCode defines error codes for user lifecycle errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Login errors (01XXXX)
	ErrCodeInvalidEmail       UserErrorCode = "USR-010001"
	ErrCodeAccountDeactivated UserErrorCode = "USR-010002"

	// Lifecycle errors (02XXXX)
	ErrCodeUserNotFound UserErrorCode = "USR-020001"
	ErrCodePurgeFailed  UserErrorCode = "USR-020002"

	// Token errors (03XXXX)
	ErrCodeInvalidToken UserErrorCode = "USR-030001"
	ErrCodeExpiredToken UserErrorCode = "USR-030002"
	ErrCodeMissingToken UserErrorCode = "USR-030003"

	// Throttling errors (04XXXX)
	ErrCodeRateLimited UserErrorCode = "USR-040001"
)

// UserError represents a user lifecycle error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
