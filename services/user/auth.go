package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of issued bearer tokens and their cached hashes.
const tokenTTL = 72 * time.Hour

// Register creates a patient or doctor account. Admin accounts are
// seeded out of band and cannot be self-registered.
func (s *DefaultUserService) Register(ctx context.Context, data models.UserRegistrationData) (*models.User, error) {
	role := data.Role
	if role == "" {
		role = models.RolePatient
	}
	if role == models.RoleAdmin || !models.ValidRole(role) {
		return nil, scheduling.InvalidInputError("invalid role " + data.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		FullName:     data.FullName,
		Email:        data.Email,
		PasswordHash: string(hash),
		Role:         role,
		PhoneNumber:  data.PhoneNumber,
		DateOfBirth:  data.DateOfBirth,
		Address:      data.Address,
	}

	if err := s.Repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, scheduling.InvalidInputError("email " + data.Email + " is already registered")
		}
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return newUser, nil
}

// Authenticate verifies credentials and issues a bearer token. The
// token hash is cached in Redis and mirrored on the user record so auth
// middleware can fall back to the database on a cache miss.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password")
		}
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSet(ctx, userRec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("Authenticate: failed to persist token hash",
			zap.String("userID", userRec.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if authCache := utils.AuthCacheClient; authCache != nil {
		cacheKey := utils.AuthCachePrefix + userRec.ID
		if err := authCache.Set(ctx, cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Authenticate: failed to cache token hash", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:       userRec.ID,
		Token:    token,
		FullName: userRec.FullName,
		Email:    userRec.Email,
		Role:     userRec.Role,
	}, nil
}

// RevokeAuthToken signs the user out everywhere by dropping the stored
// and cached token hashes.
func (s *DefaultUserService) RevokeAuthToken(ctx context.Context, userID string) error {
	if err := s.Repo.UpdateSet(ctx, userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if authCache := utils.AuthCacheClient; authCache != nil {
		if err := authCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
			utils.GetLogger().Warn("RevokeAuthToken: failed to clear auth cache",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return nil
}
