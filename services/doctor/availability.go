package doctor

import (
	"context"
	"errors"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/google/uuid"
)

// SetAvailability validates and upserts the weekday windows in entries.
// Admins may edit any doctor; a doctor may edit only their own profile.
func (s *DefaultDoctorService) SetAvailability(ctx context.Context, doctorID string, entries []models.AvailabilityEntry, caller scheduling.Caller) ([]models.DoctorAvailability, error) {
	profile, err := s.Repo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, scheduling.NotFoundError("doctor")
		}
		return nil, err
	}

	switch caller.Role {
	case models.RoleAdmin:
	case models.RoleDoctor:
		if profile.UserID != caller.UserID {
			return nil, scheduling.ErrPermissionDenied
		}
	default:
		return nil, scheduling.ErrPermissionDenied
	}

	if len(entries) == 0 {
		return nil, scheduling.InvalidInputError("at least one availability entry is required")
	}

	seen := make(map[models.Weekday]struct{}, len(entries))
	for _, entry := range entries {
		if !models.ValidWeekday(entry.Day) {
			return nil, scheduling.InvalidInputError("unknown weekday " + string(entry.Day))
		}
		if _, dup := seen[entry.Day]; dup {
			return nil, scheduling.InvalidInputError("duplicate entry for " + string(entry.Day))
		}
		seen[entry.Day] = struct{}{}

		start, err := utils.ParseClock(entry.StartTime)
		if err != nil {
			return nil, scheduling.InvalidInputError("start time must be in HH:MM format")
		}
		end, err := utils.ParseClock(entry.EndTime)
		if err != nil {
			return nil, scheduling.InvalidInputError("end time must be in HH:MM format")
		}
		if entry.IsAvailable && start >= end {
			return nil, scheduling.InvalidInputError("start time must be before end time on " + string(entry.Day))
		}
	}

	for _, entry := range entries {
		window := &models.DoctorAvailability{
			ID:          uuid.New().String(),
			DoctorID:    doctorID,
			Day:         entry.Day,
			StartTime:   entry.StartTime,
			EndTime:     entry.EndTime,
			IsAvailable: entry.IsAvailable,
		}
		if err := s.Availability.Upsert(ctx, window); err != nil {
			return nil, err
		}
	}

	return s.Availability.ListByDoctor(ctx, doctorID)
}

// ListAvailability returns a doctor's configured weekday windows.
func (s *DefaultDoctorService) ListAvailability(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	if _, err := s.Repo.GetByID(ctx, doctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, scheduling.NotFoundError("doctor")
		}
		return nil, err
	}
	return s.Availability.ListByDoctor(ctx, doctorID)
}
