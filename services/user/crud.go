package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID fetches a user profile.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, scheduling.NotFoundError("user")
		}
		return nil, err
	}
	return userRec, nil
}

// UpdateProfile updates non-empty profile fields using a partial update.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, req models.UserUpdateRequest) (*models.User, error) {
	logger := utils.GetLogger()

	updateFields := bson.M{}
	if req.FullName != "" {
		updateFields["fullName"] = req.FullName
	}
	if req.PhoneNumber != "" {
		updateFields["phoneNumber"] = req.PhoneNumber
	}
	if req.DateOfBirth != "" {
		updateFields["dateOfBirth"] = req.DateOfBirth
	}
	if req.Address != "" {
		updateFields["address"] = req.Address
	}
	if len(updateFields) == 0 {
		return nil, scheduling.InvalidInputError("no updatable fields provided")
	}

	if err := s.Repo.UpdateSet(ctx, userID, updateFields); err != nil {
		logger.Error("Failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Repo.GetByID(ctx, userID)
}

// GetAllUsers returns every account. Admin surface only.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}
