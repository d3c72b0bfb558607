package cli

import (
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	if errors.IsAppError(err) {
		if errors.ShouldLogError(err) {
			logging.Debug("command failed", eh.failureFields(err)...)
		}
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

// failureFields collects the structured fields logged for a failed command
func (eh *ErrorHandler) failureFields(err error) []interface{} {
	fields := []interface{}{"code", eh.GetErrorCode(err), "err", err}
	if !eh.IsStorageError(err) {
		return fields
	}

	appErr, _ := errors.AsAppError(err)
	for _, key := range []string{"operation", "path", "format"} {
		if value, ok := appErr.GetContext(key); ok {
			fields = append(fields, key, value)
		}
	}
	return fields
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error came from reading, parsing or writing tasks
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeIO) || errors.IsErrorType(err, errors.ErrorTypeParse)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
