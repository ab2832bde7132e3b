package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Course type errors
var (
	ErrCourseTypeNotFound = errors.New("course type not found")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Offering errors
var (
	ErrOfferingNotFound   = errors.New("course offering not found")
	ErrOfferingPairExists = errors.New("this course type and course combination already exists")
	ErrOfferingAtCapacity = errors.New("course offering is at capacity")
	ErrInvalidCapacity    = errors.New("capacity must be a positive integer")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Registration errors
var (
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrDuplicateRegistration = errors.New("this student is already registered for this offering")
	ErrRegistrationCancelled = errors.New("registration is already cancelled")
)

// UI errors
var (
	ErrNoPendingAction = errors.New("no pending confirmation")
	ErrUnknownView     = errors.New("unknown view")
)

// ValidationError carries the human-readable messages of all failed rules so
// the surface layer can show them as a list.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidationFailed.Error()
	}
	msg := e.Messages[0]
	for _, m := range e.Messages[1:] {
		msg += "; " + m
	}
	return msg
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError from rule messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
