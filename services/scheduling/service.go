package scheduling

import (
	"context"

	availabilityRepo "medibook/database/repository/availability"
	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
)

// Service is the appointment scheduling engine: booking, lifecycle
// transitions and slot enumeration.
type Service interface {
	// CreateAppointment books a slot for the calling patient. The patient
	// identity always comes from the authenticated caller, never the payload.
	CreateAppointment(ctx context.Context, patientID string, req models.AppointmentCreateRequest) (*models.Appointment, error)
	// CancelAppointment flips an active appointment to cancelled.
	CancelAppointment(ctx context.Context, appointmentID string, caller Caller) error
	// UpdateStatus applies a lifecycle transition (confirm, complete, no-show).
	UpdateStatus(ctx context.Context, appointmentID string, newStatus models.AppointmentStatus, caller Caller) (*models.Appointment, error)
	// UpdateNotes updates free-text notes outside the state machine.
	UpdateNotes(ctx context.Context, appointmentID, notes string, caller Caller) (*models.Appointment, error)
	// AvailableSlots enumerates the open "HH:MM" start times for a doctor
	// on an ISO-8601 date.
	AvailableSlots(ctx context.Context, doctorID, date string) ([]string, error)
	// ListForCaller returns the appointments the caller may see.
	ListForCaller(ctx context.Context, caller Caller) ([]models.Appointment, error)
	// GetByID fetches one appointment, subject to the same visibility rule.
	GetByID(ctx context.Context, appointmentID string, caller Caller) (*models.Appointment, error)
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Availability availabilityRepo.AvailabilityRepository
	Doctors      doctorRepo.DoctorRepository
	Validator    *ConflictValidator
}

// NewSchedulingService wires a DefaultSchedulingService and its validator.
func NewSchedulingService(
	appointments appointmentRepo.AppointmentRepository,
	availability availabilityRepo.AvailabilityRepository,
	doctors doctorRepo.DoctorRepository,
) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Appointments: appointments,
		Availability: availability,
		Doctors:      doctors,
		Validator: &ConflictValidator{
			Availability: availability,
			Appointments: appointments,
		},
	}
}

var _ Service = (*DefaultSchedulingService)(nil)

// resolveCaller fills in the caller's doctor profile ID for doctor-role
// callers. A doctor without a profile keeps an empty DoctorID and fails
// ownership checks closed.
func (s *DefaultSchedulingService) resolveCaller(ctx context.Context, caller Caller) Caller {
	if caller.Role != models.RoleDoctor || caller.DoctorID != "" {
		return caller
	}
	doctor, err := s.Doctors.GetByUserID(ctx, caller.UserID)
	if err != nil {
		return caller
	}
	caller.DoctorID = doctor.ID
	return caller
}
