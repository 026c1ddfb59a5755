package scheduling

import (
	"context"
	"errors"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// transitions is the lifecycle state machine. Absent keys are terminal.
var transitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled, models.StatusNoShow},
	models.StatusConfirmed: {models.StatusCancelled, models.StatusCompleted, models.StatusNoShow},
}

func canTransition(from, to models.AppointmentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CreateAppointment validates and books a slot for the calling patient.
// The appointment always enters pending.
func (s *DefaultSchedulingService) CreateAppointment(ctx context.Context, patientID string, req models.AppointmentCreateRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if _, err := s.Doctors.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, NotFoundError("doctor")
		}
		return nil, err
	}

	if err := s.Validator.Validate(ctx, req.DoctorID, req.Date, req.Time, ""); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		ID:        uuid.New().String(),
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    models.StatusPending,
		Symptoms:  req.Symptoms,
		Notes:     req.Notes,
	}

	if err := s.Appointments.Create(ctx, appointment); err != nil {
		// The occupancy pre-check races with concurrent writers; the
		// unique index is the final arbiter.
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		logger.Error("failed to persist appointment",
			zap.String("doctorID", req.DoctorID), zap.String("date", req.Date),
			zap.String("time", req.Time), zap.Error(err))
		return nil, err
	}
	return appointment, nil
}

// CancelAppointment flips an active appointment to cancelled. Allowed
// for the owning patient, the assigned doctor, or an admin, and only
// from pending or confirmed.
func (s *DefaultSchedulingService) CancelAppointment(ctx context.Context, appointmentID string, caller Caller) error {
	appointment, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return NotFoundError("appointment")
		}
		return err
	}

	caller = s.resolveCaller(ctx, caller)
	if err := Authorize(OpCancel, caller, appointment); err != nil {
		return err
	}

	if !appointment.Status.Active() {
		return ErrInvalidTransition
	}

	return s.Appointments.UpdateSet(ctx, appointmentID, bson.M{"status": models.StatusCancelled})
}

// UpdateStatus applies a generic lifecycle transition. Same-value writes
// succeed as no-ops; anything else must be a legal edge in the state
// machine, and nothing leaves a terminal state.
func (s *DefaultSchedulingService) UpdateStatus(ctx context.Context, appointmentID string, newStatus models.AppointmentStatus, caller Caller) (*models.Appointment, error) {
	if !models.ValidStatus(newStatus) {
		return nil, InvalidInputError("unknown status " + string(newStatus))
	}

	appointment, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NotFoundError("appointment")
		}
		return nil, err
	}

	caller = s.resolveCaller(ctx, caller)
	if err := Authorize(OpUpdateStatus, caller, appointment); err != nil {
		return nil, err
	}

	if newStatus == appointment.Status {
		return appointment, nil
	}
	if !canTransition(appointment.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.Appointments.UpdateSet(ctx, appointmentID, bson.M{"status": newStatus}); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	appointment.Status = newStatus
	return appointment, nil
}

// UpdateNotes updates free-text notes. Notes edits are not gated by the
// state machine.
func (s *DefaultSchedulingService) UpdateNotes(ctx context.Context, appointmentID, notes string, caller Caller) (*models.Appointment, error) {
	appointment, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NotFoundError("appointment")
		}
		return nil, err
	}

	caller = s.resolveCaller(ctx, caller)
	if err := Authorize(OpUpdateNotes, caller, appointment); err != nil {
		return nil, err
	}

	if err := s.Appointments.UpdateSet(ctx, appointmentID, bson.M{"notes": notes}); err != nil {
		return nil, err
	}
	appointment.Notes = notes
	return appointment, nil
}

// ListForCaller returns the caller's visible appointments: patients see
// their own, doctors their schedule, admins everything.
func (s *DefaultSchedulingService) ListForCaller(ctx context.Context, caller Caller) ([]models.Appointment, error) {
	caller = s.resolveCaller(ctx, caller)

	switch caller.Role {
	case models.RolePatient:
		return s.Appointments.ListByPatient(ctx, caller.UserID)
	case models.RoleDoctor:
		if caller.DoctorID == "" {
			return nil, ErrPermissionDenied
		}
		return s.Appointments.ListByDoctor(ctx, caller.DoctorID)
	case models.RoleAdmin:
		return s.Appointments.ListAll(ctx)
	}
	return nil, ErrPermissionDenied
}

// GetByID fetches one appointment under the caller visibility rule.
func (s *DefaultSchedulingService) GetByID(ctx context.Context, appointmentID string, caller Caller) (*models.Appointment, error) {
	appointment, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NotFoundError("appointment")
		}
		return nil, err
	}

	caller = s.resolveCaller(ctx, caller)
	if err := Authorize(OpView, caller, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}
