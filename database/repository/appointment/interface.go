package appointmentRepo

import (
	"context"
	"errors"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no appointment matches the lookup.
var ErrNotFound = errors.New("appointment not found")

// ErrDuplicateSlot is returned when an insert or update collides with
// the unique active-slot index on (doctor, date, time).
var ErrDuplicateSlot = errors.New("slot already booked")

// AppointmentRepository defines appointment data access.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// UpdateSet applies a partial $set update to an existing appointment.
	UpdateSet(ctx context.Context, id string, fields bson.M) error

	// ExistsActive reports whether a pending or confirmed appointment
	// occupies (doctorID, date, timeOfDay). excludeID, when non-empty,
	// skips that appointment so updates do not conflict with themselves.
	ExistsActive(ctx context.Context, doctorID, date, timeOfDay, excludeID string) (bool, error)
	// ActiveTimes returns the set of occupied "HH:MM" times for a doctor
	// on a date, considering only pending and confirmed appointments.
	ActiveTimes(ctx context.Context, doctorID, date string) (map[string]struct{}, error)

	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
}
