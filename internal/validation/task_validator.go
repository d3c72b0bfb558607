package validation

import (
	"strconv"
	"strings"
)

// TaskValidator validates raw command inputs before they reach the services
type TaskValidator struct {
	validator *Validator
	formats   []string
}

// NewTaskValidator creates a new task validator accepting the given export formats
func NewTaskValidator(exportFormats ...string) *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
		formats:   exportFormats,
	}
}

// ParseTaskID converts a command argument into a task id.
// Any integer is accepted; ids that match no task are handled by the caller.
func (tv *TaskValidator) ParseTaskID(raw string) (int64, error) {
	if !tv.validator.IsInteger(raw) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("id", raw, "an integer")
		return 0, validationError
	}
	id, _ := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	return id, nil
}

// ValidateExport checks the export target and format
func (tv *TaskValidator) ValidateExport(path string, format string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(path) {
		validationError.AddRequiredError("filename")
	}
	if !tv.validator.IsOneOf(format, tv.formats...) {
		validationError.AddInvalidValueError("format", format, "must be one of "+strings.Join(tv.formats, ", "))
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
