package doctorRepo

import (
	"context"
	"errors"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no doctor or specialization matches the lookup.
var ErrNotFound = errors.New("doctor not found")

// ErrDuplicateLicense is returned when an insert collides with the
// unique license-number index.
var ErrDuplicateLicense = errors.New("license number already registered")

// DoctorRepository defines methods for doctor and specialization data access.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	// UpdateSet applies a partial $set update to an existing doctor.
	UpdateSet(ctx context.Context, id string, fields bson.M) error
	// ListAvailable returns doctors currently open for booking.
	ListAvailable(ctx context.Context) ([]models.Doctor, error)
	ListAll(ctx context.Context) ([]models.Doctor, error)
	ListBySpecialization(ctx context.Context, specializationID string) ([]models.Doctor, error)

	CreateSpecialization(ctx context.Context, sp *models.Specialization) error
	ListSpecializations(ctx context.Context) ([]models.Specialization, error)
}
