package user

import (
	"context"
	"testing"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	CreateFunc     func(ctx context.Context, user *models.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	GetAllFunc     func(ctx context.Context) ([]models.User, error)
	UpdateSetFunc  func(ctx context.Context, id string, fields bson.M) error
}

var _ userRepo.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, userRepo.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, userRepo.ErrNotFound
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateSet(ctx context.Context, id string, fields bson.M) error {
	if m.UpdateSetFunc != nil {
		return m.UpdateSetFunc(ctx, id, fields)
	}
	return nil
}

func TestRegisterDefaultsToPatient(t *testing.T) {
	var created *models.User
	svc := &DefaultUserService{Repo: &mockUserRepo{
		CreateFunc: func(ctx context.Context, user *models.User) error {
			created = user
			return nil
		},
	}}

	got, err := svc.Register(context.Background(), models.UserRegistrationData{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, models.RolePatient, got.Role)
	assert.NotEmpty(t, got.ID)

	// Password is stored hashed, never in the clear.
	assert.NotEqual(t, "correct-horse", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))
}

func TestRegisterRejectsAdminAndUnknownRoles(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepo{}}

	for _, role := range []string{models.RoleAdmin, "superuser"} {
		_, err := svc.Register(context.Background(), models.UserRegistrationData{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "correct-horse",
			Role:     role,
		})
		assert.Equal(t, scheduling.CodeInvalidInput, scheduling.CodeOf(err), role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepo{
		CreateFunc: func(ctx context.Context, user *models.User) error {
			return userRepo.ErrDuplicateEmail
		},
	}}

	_, err := svc.Register(context.Background(), models.UserRegistrationData{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct-horse",
	})
	require.Error(t, err)
	assert.Equal(t, scheduling.CodeInvalidInput, scheduling.CodeOf(err))
	assert.Contains(t, err.Error(), "already registered")
}

func TestUpdateProfilePartial(t *testing.T) {
	var wrote bson.M
	svc := &DefaultUserService{Repo: &mockUserRepo{
		UpdateSetFunc: func(ctx context.Context, id string, fields bson.M) error {
			wrote = fields
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, FullName: "Jane Q. Doe"}, nil
		},
	}}

	got, err := svc.UpdateProfile(context.Background(), "user-1", models.UserUpdateRequest{
		FullName: "Jane Q. Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"fullName": "Jane Q. Doe"}, wrote)
	assert.Equal(t, "Jane Q. Doe", got.FullName)
}

func TestUpdateProfileNoFields(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepo{}}

	_, err := svc.UpdateProfile(context.Background(), "user-1", models.UserUpdateRequest{})
	assert.Equal(t, scheduling.CodeInvalidInput, scheduling.CodeOf(err))
}

func TestAuthenticateIssuesTokenAndPersistsHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	var wrote bson.M
	svc := &DefaultUserService{Repo: &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "user-1", FullName: "Jane Doe", Email: email, PasswordHash: string(hash), Role: models.RolePatient}, nil
		},
		UpdateSetFunc: func(ctx context.Context, id string, fields bson.M) error {
			wrote = fields
			return nil
		},
	}}

	auth, err := svc.Authenticate(context.Background(), "jane@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "user-1", auth.ID)
	assert.Equal(t, models.RolePatient, auth.Role)
	require.NotEmpty(t, auth.Token)

	// The issued token carries the user's identity and role.
	sub, role, err := utils.ExtractClaimsFromToken(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.Equal(t, models.RolePatient, role)

	// The record carries the hash the auth middleware falls back to.
	assert.Equal(t, utils.HashToken(auth.Token), wrote["tokenHash"])
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	svc := &DefaultUserService{Repo: &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			if email == "jane@example.com" {
				return &models.User{ID: "user-1", Email: email, PasswordHash: string(hash)}, nil
			}
			return nil, userRepo.ErrNotFound
		},
	}}

	_, err = svc.Authenticate(context.Background(), "jane@example.com", "wrong-password")
	assert.Error(t, err)

	// Unknown account and bad password are indistinguishable.
	_, err2 := svc.Authenticate(context.Background(), "nobody@example.com", "correct-horse")
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestRevokeAuthTokenClearsStoredHash(t *testing.T) {
	var wrote bson.M
	svc := &DefaultUserService{Repo: &mockUserRepo{
		UpdateSetFunc: func(ctx context.Context, id string, fields bson.M) error {
			wrote = fields
			return nil
		},
	}}

	require.NoError(t, svc.RevokeAuthToken(context.Background(), "user-1"))
	assert.Equal(t, "", wrote["tokenHash"])
}
