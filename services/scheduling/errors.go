package scheduling

import "errors"

// Error codes returned by the scheduling core. Handlers map these onto
// HTTP statuses; none are process-fatal.
const (
	CodePastDate          = "pastDate"
	CodeDoctorUnavailable = "doctorUnavailable"
	CodeOutsideHours      = "outsideHours"
	CodeSlotTaken         = "slotTaken"
	CodeInvalidTransition = "invalidTransition"
	CodePermissionDenied  = "permissionDenied"
	CodeNotFound          = "notFound"
	CodeInvalidInput      = "invalidInput"
)

// Error is a tagged, recoverable scheduling failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

var (
	ErrPastDate          = &Error{Code: CodePastDate, Message: "appointment date cannot be in the past"}
	ErrDoctorUnavailable = &Error{Code: CodeDoctorUnavailable, Message: "doctor is not available on this day"}
	ErrOutsideHours      = &Error{Code: CodeOutsideHours, Message: "appointment time is outside doctor's available hours"}
	ErrSlotTaken         = &Error{Code: CodeSlotTaken, Message: "this time slot is already booked"}
	ErrInvalidTransition = &Error{Code: CodeInvalidTransition, Message: "status change is not allowed from the current state"}
	ErrPermissionDenied  = &Error{Code: CodePermissionDenied, Message: "permission denied"}
)

// NotFoundError reports an absent doctor, appointment or other resource.
func NotFoundError(what string) *Error {
	return &Error{Code: CodeNotFound, Message: what + " not found"}
}

// InvalidInputError reports a malformed date, time or field value.
func InvalidInputError(message string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message}
}

// CodeOf extracts the scheduling error code from err, or "" when err is
// not a scheduling error.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
