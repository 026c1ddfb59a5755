package doctor

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "medibook/database/repository/doctor"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateDoctor attaches a doctor profile to an existing doctor-role user.
func (s *DefaultDoctorService) CreateDoctor(ctx context.Context, req models.DoctorCreateRequest) (*models.Doctor, error) {
	owner, err := s.Users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, scheduling.NotFoundError("user")
		}
		return nil, err
	}
	if owner.Role != models.RoleDoctor {
		return nil, scheduling.InvalidInputError("user is not a doctor account")
	}

	newDoctor := &models.Doctor{
		ID:               uuid.New().String(),
		UserID:           req.UserID,
		SpecializationID: req.SpecializationID,
		LicenseNumber:    req.LicenseNumber,
		ExperienceYears:  req.ExperienceYears,
		Bio:              req.Bio,
		ConsultationFee:  req.ConsultationFee,
		IsAvailable:      true,
	}

	if err := s.Repo.Create(ctx, newDoctor); err != nil {
		if errors.Is(err, doctorRepo.ErrDuplicateLicense) {
			return nil, scheduling.InvalidInputError("license number is already registered")
		}
		utils.GetLogger().Error("CreateDoctor: failed to create profile",
			zap.String("userID", req.UserID), zap.Error(err))
		return nil, fmt.Errorf("failed to create doctor profile: %w", err)
	}
	return newDoctor, nil
}

// UpdateDoctor applies a partial update to a doctor profile.
func (s *DefaultDoctorService) UpdateDoctor(ctx context.Context, doctorID string, req models.DoctorUpdateRequest) (*models.Doctor, error) {
	updateFields := bson.M{}
	if req.SpecializationID != nil {
		updateFields["specializationId"] = *req.SpecializationID
	}
	if req.ExperienceYears != nil {
		updateFields["experienceYears"] = *req.ExperienceYears
	}
	if req.Bio != nil {
		updateFields["bio"] = *req.Bio
	}
	if req.ConsultationFee != nil {
		updateFields["consultationFee"] = *req.ConsultationFee
	}
	if req.IsAvailable != nil {
		updateFields["isAvailable"] = *req.IsAvailable
	}
	if len(updateFields) == 0 {
		return nil, scheduling.InvalidInputError("no updatable fields provided")
	}

	if err := s.Repo.UpdateSet(ctx, doctorID, updateFields); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, scheduling.NotFoundError("doctor")
		}
		return nil, err
	}
	return s.Repo.GetByID(ctx, doctorID)
}

// DisableDoctor soft-removes a doctor: the profile stays, bookings of
// new patients stop at the listing level.
func (s *DefaultDoctorService) DisableDoctor(ctx context.Context, doctorID string) error {
	err := s.Repo.UpdateSet(ctx, doctorID, bson.M{"isAvailable": false})
	if errors.Is(err, doctorRepo.ErrNotFound) {
		return scheduling.NotFoundError("doctor")
	}
	return err
}

// GetDoctorByID fetches one doctor profile.
func (s *DefaultDoctorService) GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	d, err := s.Repo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, scheduling.NotFoundError("doctor")
		}
		return nil, err
	}
	return d, nil
}

// ListAvailableDoctors returns the public doctor catalogue.
func (s *DefaultDoctorService) ListAvailableDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.ListAvailable(ctx)
}

// ListAllDoctors returns every profile, disabled ones included. Admin surface.
func (s *DefaultDoctorService) ListAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.ListAll(ctx)
}

// ListBySpecialization returns available doctors in one specialization.
func (s *DefaultDoctorService) ListBySpecialization(ctx context.Context, specializationID string) ([]models.Doctor, error) {
	return s.Repo.ListBySpecialization(ctx, specializationID)
}

// CreateSpecialization registers a new specialization. Admin surface.
func (s *DefaultDoctorService) CreateSpecialization(ctx context.Context, name, description string) (*models.Specialization, error) {
	if name == "" {
		return nil, scheduling.InvalidInputError("specialization name is required")
	}
	sp := &models.Specialization{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}
	if err := s.Repo.CreateSpecialization(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// ListSpecializations returns all specializations.
func (s *DefaultDoctorService) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	return s.Repo.ListSpecializations(ctx)
}
