package scheduling

import "medibook/models"

// Operation names an action a caller may attempt on an appointment.
type Operation string

const (
	OpView         Operation = "view"
	OpCancel       Operation = "cancel"
	OpUpdateStatus Operation = "update_status"
	OpUpdateNotes  Operation = "update_notes"
)

// Caller identifies the authenticated principal behind a request.
// DoctorID is the caller's doctor profile ID, set only for doctor-role
// callers that own a profile.
type Caller struct {
	UserID   string
	Role     string
	DoctorID string
}

// Authorize decides whether caller may perform op on appointment.
// Unknown roles and unmatched ownership deny.
func Authorize(op Operation, caller Caller, appointment *models.Appointment) error {
	if appointment == nil || caller.UserID == "" {
		return ErrPermissionDenied
	}

	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleDoctor:
		// Doctors act only on their own schedule.
		if caller.DoctorID != "" && caller.DoctorID == appointment.DoctorID {
			return nil
		}
	case models.RolePatient:
		if caller.UserID != appointment.PatientID {
			break
		}
		switch op {
		case OpView, OpCancel, OpUpdateNotes:
			return nil
		}
	}
	return ErrPermissionDenied
}
