package availability

import "fmt"

// Error codes surfaced to callers. Validation and configuration failures
// carry distinct codes so the client can render a specific message.
const (
	CodeMenuNotFound       = "menu_not_found"
	CodeMenuNotPublished   = "menu_not_published"
	CodeMenuArchived       = "menu_archived"
	CodeMenuOnlineDisabled = "menu_online_disabled"
	CodeInvalidYear        = "invalid_year"
	CodeInvalidMonth       = "invalid_month"
	CodeInvalidDate        = "invalid_date"
	CodeStaffNotAssigned   = "staff_not_assigned"
	CodeStaffNotConfigured = "staff_not_configured"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code, msg string) error {
	return &Error{Code: code, Message: msg}
}
