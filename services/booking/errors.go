package booking

import "fmt"

// Error codes surfaced by the reservation ledger and approval workflow.
const (
	CodeValidation         = "validationError"
	CodeNotFound           = "notFoundError"
	CodeDuplicateBooking   = "duplicateBookingError"
	CodeQuotaExceeded      = "quotaExceededError"
	CodeSlotTaken          = "slotTakenError"
	CodeApprovalConflict   = "approvalConflictError"
	CodeInvalidState       = "invalidStateError"
	CodePermission         = "permissionError"
	CodeCancellationWindow = "cancellationWindowError"
)

// Error is a booking business-rule rejection with a stable code and
// enough detail for the client to pick another option.
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
