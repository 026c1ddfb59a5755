package doctor

import (
	"context"

	availabilityRepo "medibook/database/repository/availability"
	doctorRepo "medibook/database/repository/doctor"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/scheduling"
)

// DoctorService manages doctor profiles, specializations and weekly
// availability windows.
type DoctorService interface {
	// CreateDoctor attaches a doctor profile to an existing doctor-role
	// user. Admin surface.
	CreateDoctor(ctx context.Context, req models.DoctorCreateRequest) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, req models.DoctorUpdateRequest) (*models.Doctor, error)
	// DisableDoctor soft-removes a doctor by clearing the availability
	// flag; the profile row is kept.
	DisableDoctor(ctx context.Context, doctorID string) error

	GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	ListAvailableDoctors(ctx context.Context) ([]models.Doctor, error)
	ListAllDoctors(ctx context.Context) ([]models.Doctor, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]models.Doctor, error)

	CreateSpecialization(ctx context.Context, name, description string) (*models.Specialization, error)
	ListSpecializations(ctx context.Context) ([]models.Specialization, error)

	// SetAvailability replaces the weekday windows given in entries.
	// Allowed for admins and for the doctor who owns the profile.
	SetAvailability(ctx context.Context, doctorID string, entries []models.AvailabilityEntry, caller scheduling.Caller) ([]models.DoctorAvailability, error)
	ListAvailability(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo         doctorRepo.DoctorRepository
	Users        userRepo.UserRepository
	Availability availabilityRepo.AvailabilityRepository
}

var _ DoctorService = (*DefaultDoctorService)(nil)
