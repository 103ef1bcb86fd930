package reservation

import "fmt"

const (
	CodeMenuNotFound      = "menu_not_found"
	CodeMenuUnavailable   = "menu_unavailable"
	CodeStaffNotAssigned  = "staff_not_assigned"
	CodeInvalidTime       = "invalid_time"
	CodeDeadlinePassed    = "deadline_passed"
	CodeSlotTaken         = "slot_taken"
	CodeUserAlreadyBooked = "user_already_booked"
	CodeNotFound          = "not_found"
	CodeForbidden         = "forbidden"
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
