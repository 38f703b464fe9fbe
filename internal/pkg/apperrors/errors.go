package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("resource not found")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrValidation = errors.New("validation failed")

	// ErrConnectivity means a database session could not be acquired at all.
	ErrConnectivity = errors.New("database unreachable")

	// ErrDuplicateKey is an insert with a primary key that already exists.
	ErrDuplicateKey = errors.New("duplicate primary key")

	// ErrReferential is a write that violates a foreign key, e.g. customer
	// details pointing at a customer that does not exist.
	ErrReferential = errors.New("referential integrity violation")

	// ErrQuery covers any other database-reported failure during a read or write.
	ErrQuery = errors.New("query failed")

	// ErrPersistence wraps the underlying cause after a composite
	// transaction rolled back.
	ErrPersistence = errors.New("persistence operation rolled back")

	ErrInternalServer = errors.New("internal server error")
)

type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func NewValidationError(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, &ValidationError{Field: field, Message: message})
}

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func WrapPersistenceError(cause error, message string) error {
	return &AppError{
		Code:    "TX_ROLLBACK",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrPersistence, cause),
	}
}
