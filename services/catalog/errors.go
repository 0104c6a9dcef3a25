package catalog

import "fmt"

// Error codes surfaced by the area catalog.
const (
	CodeValidation    = "validationError"
	CodeNotFound      = "notFoundError"
	CodeDuplicateName = "duplicateNameError"
	CodePermission    = "permissionError"
)

// Error is a catalog business-rule rejection with a stable code.
type Error struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrCode returns the stable error code for transport mapping.
func (e *Error) ErrCode() string { return e.Code }

func newError(code, msg string, details map[string]any) error {
	return &Error{Code: code, Message: msg, Details: details}
}
