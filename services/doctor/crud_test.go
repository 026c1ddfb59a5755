package doctor

import (
	"context"
	"testing"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func doctorUser(role string) *mockUserRepo {
	return &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Role: role}, nil
		},
	}
}

func TestCreateDoctorRequiresDoctorRoleUser(t *testing.T) {
	svc := newTestService(nil, doctorUser(models.RolePatient), nil)

	_, err := svc.CreateDoctor(context.Background(), models.DoctorCreateRequest{
		UserID:        "user-1",
		LicenseNumber: "LIC-1",
	})
	assert.Equal(t, scheduling.CodeInvalidInput, scheduling.CodeOf(err))
}

func TestCreateDoctorUnknownUser(t *testing.T) {
	svc := newTestService(nil, &mockUserRepo{}, nil)

	_, err := svc.CreateDoctor(context.Background(), models.DoctorCreateRequest{
		UserID:        "missing",
		LicenseNumber: "LIC-1",
	})
	assert.Equal(t, scheduling.CodeNotFound, scheduling.CodeOf(err))
}

func TestCreateDoctorDuplicateLicense(t *testing.T) {
	repo := &mockDoctorRepo{
		CreateFunc: func(ctx context.Context, doctor *models.Doctor) error {
			return doctorRepo.ErrDuplicateLicense
		},
	}
	svc := newTestService(repo, doctorUser(models.RoleDoctor), nil)

	_, err := svc.CreateDoctor(context.Background(), models.DoctorCreateRequest{
		UserID:        "user-1",
		LicenseNumber: "LIC-1",
	})
	assert.Equal(t, scheduling.CodeInvalidInput, scheduling.CodeOf(err))
}

func TestCreateDoctorStartsAvailable(t *testing.T) {
	var created *models.Doctor
	repo := &mockDoctorRepo{
		CreateFunc: func(ctx context.Context, doctor *models.Doctor) error {
			created = doctor
			return nil
		},
	}
	svc := newTestService(repo, doctorUser(models.RoleDoctor), nil)

	got, err := svc.CreateDoctor(context.Background(), models.DoctorCreateRequest{
		UserID:        "user-1",
		LicenseNumber: "LIC-1",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, got.IsAvailable)
	assert.NotEmpty(t, got.ID)
}

func TestUpdateDoctorPartialFields(t *testing.T) {
	var wrote bson.M
	repo := &mockDoctorRepo{
		UpdateSetFunc: func(ctx context.Context, id string, fields bson.M) error {
			wrote = fields
			return nil
		},
	}
	svc := newTestService(repo, nil, nil)

	bio := "senior cardiologist"
	years := 12
	_, err := svc.UpdateDoctor(context.Background(), "doc-1", models.DoctorUpdateRequest{
		Bio:             &bio,
		ExperienceYears: &years,
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"bio": "senior cardiologist", "experienceYears": 12}, wrote)
}

func TestUpdateDoctorNoFields(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.UpdateDoctor(context.Background(), "doc-1", models.DoctorUpdateRequest{})
	assert.Equal(t, scheduling.CodeInvalidInput, scheduling.CodeOf(err))
}

func TestDisableDoctorClearsAvailability(t *testing.T) {
	var wrote bson.M
	repo := &mockDoctorRepo{
		UpdateSetFunc: func(ctx context.Context, id string, fields bson.M) error {
			wrote = fields
			return nil
		},
	}
	svc := newTestService(repo, nil, nil)

	require.NoError(t, svc.DisableDoctor(context.Background(), "doc-1"))
	assert.Equal(t, bson.M{"isAvailable": false}, wrote)
}
