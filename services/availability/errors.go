package availability

import (
	"errors"
	"fmt"
)

// Validation error codes reported to the editor.
const (
	CodeMissingDate       = "MissingDate"
	CodeInvalidDateFormat = "InvalidDateFormat"
	CodePastDate          = "PastDate"
	CodeMissingStart      = "MissingStart"
	CodeMissingEnd        = "MissingEnd"
	CodeInvalidTimeFormat = "InvalidTimeFormat"
	CodeEndBeforeStart    = "EndBeforeStart"
	CodeOverlappingSlots  = "OverlappingSlots"
	CodeDuplicateDate     = "DuplicateDate"
)

// ErrInvalidAvailability is returned by Save when the set still has validation errors.
var ErrInvalidAvailability = errors.New("availability has validation errors")

// ValidationError is a recoverable, user-facing validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(code, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}

// CodeOf returns the validation code carried by err, or "" if err is not a ValidationError.
func CodeOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
