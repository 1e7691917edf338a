package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Related-contacts errors
var (
	// ErrInvalidRole is returned when the principal's role claim is neither
	// "employee" nor "user".
	ErrInvalidRole = errors.New("invalid user role")
	// ErrEmployeeNotFound is returned when the emp_id on the token does not
	// resolve to an employee row.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrEmployeeAlreadyExists is returned when an employee row already
	// exists for the phone or user.
	ErrEmployeeAlreadyExists = errors.New("employee already exists")
)

// OTP errors
var (
	ErrOTPNotFound = errors.New("otp not found")
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPMismatch = errors.New("otp code mismatch")
	ErrOTPCooldown = errors.New("otp resend cooldown active")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Faculty / Department errors
var (
	ErrFacultyNotFound       = errors.New("faculty not found")
	ErrFacultyHasDepartments = errors.New("faculty has associated departments and cannot be deleted")
	ErrDepartmentNotFound    = errors.New("department not found")
)

// Contactable entity errors
var (
	ErrPostNotFound         = errors.New("post not found")
	ErrSpaceNotFound        = errors.New("space not found")
	ErrESPNotFound          = errors.New("assignment not found")
	ErrESPAlreadyExists     = errors.New("assignment already exists")
	ErrContactInfoNotFound  = errors.New("contact info not found")
	ErrContactInfoExists    = errors.New("contact info already exists")
	ErrGroupNotFound        = errors.New("group not found")
	ErrMembershipNotFound   = errors.New("group membership not found")
	ErrCategoryNotFound     = errors.New("favorite category not found")
	ErrFavoriteNotFound     = errors.New("favorite not found")
	ErrFavoriteExists       = errors.New("favorite already exists")
	ErrClassificationExists = errors.New("employee already has the other classification")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
