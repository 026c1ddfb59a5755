package availabilityRepo

import (
	"context"

	"medibook/models"
)

// AvailabilityRepository defines data access for per-weekday doctor
// availability windows. Rows are unique per (doctor, day).
type AvailabilityRepository interface {
	// Upsert inserts or replaces the window for (availability.DoctorID,
	// availability.Day).
	Upsert(ctx context.Context, availability *models.DoctorAvailability) error
	// GetByDoctorAndDay resolves the window for one weekday. The boolean
	// reports whether a record exists; absence is not an error.
	GetByDoctorAndDay(ctx context.Context, doctorID string, day models.Weekday) (*models.DoctorAvailability, bool, error)
	// ListByDoctor returns all configured windows for a doctor.
	ListByDoctor(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error)
}
