package user

import (
	"context"

	userRepo "medibook/database/repository/user"
	"medibook/models"
)

// UserService covers account registration, authentication and profile
// management. Role and identity claims issued here are what the
// scheduling core trusts.
type UserService interface {
	Register(ctx context.Context, data models.UserRegistrationData) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeAuthToken(ctx context.Context, userID string) error

	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UserUpdateRequest) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

var _ UserService = (*DefaultUserService)(nil)

// AuthResponse contains the authenticated user's ID, bearer token and
// display details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}
