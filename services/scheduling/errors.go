package scheduling

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers so UI layers can branch on the kind.
const (
	CodeUnknownService  = "unknownService"
	CodeUnknownStaff    = "unknownStaff"
	CodeSlotUnavailable = "slotUnavailable"
	CodeNotFound        = "notFound"
	CodeValidation      = "validation"
	CodeStoreFailure    = "storeFailure"
)

// SchedulingError is a typed failure from the booking store.
type SchedulingError struct {
	Code    string
	Message string
	Err     error
}

func (e *SchedulingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SchedulingError) Unwrap() error {
	return e.Err
}

func newError(code, msg string) error {
	return &SchedulingError{Code: code, Message: msg}
}

func wrapStoreFailure(msg string, err error) error {
	return &SchedulingError{Code: CodeStoreFailure, Message: msg, Err: err}
}

// ErrorCode extracts the scheduling error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err carries the given scheduling error code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}
