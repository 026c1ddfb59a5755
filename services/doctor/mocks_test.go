package doctor

import (
	"context"

	availabilityRepo "medibook/database/repository/availability"
	doctorRepo "medibook/database/repository/doctor"
	userRepo "medibook/database/repository/user"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

type mockDoctorRepo struct {
	CreateFunc               func(ctx context.Context, doctor *models.Doctor) error
	GetByIDFunc              func(ctx context.Context, id string) (*models.Doctor, error)
	GetByUserIDFunc          func(ctx context.Context, userID string) (*models.Doctor, error)
	UpdateSetFunc            func(ctx context.Context, id string, fields bson.M) error
	ListAvailableFunc        func(ctx context.Context) ([]models.Doctor, error)
	ListAllFunc              func(ctx context.Context) ([]models.Doctor, error)
	ListBySpecializationFunc func(ctx context.Context, specializationID string) ([]models.Doctor, error)
	CreateSpecializationFunc func(ctx context.Context, sp *models.Specialization) error
	ListSpecializationsFunc  func(ctx context.Context) ([]models.Specialization, error)
}

var _ doctorRepo.DoctorRepository = (*mockDoctorRepo)(nil)

func (m *mockDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return nil
}

func (m *mockDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Doctor{ID: id, UserID: "doc-user-1", IsAvailable: true}, nil
}

func (m *mockDoctorRepo) GetByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, doctorRepo.ErrNotFound
}

func (m *mockDoctorRepo) UpdateSet(ctx context.Context, id string, fields bson.M) error {
	if m.UpdateSetFunc != nil {
		return m.UpdateSetFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockDoctorRepo) ListAvailable(ctx context.Context) ([]models.Doctor, error) {
	if m.ListAvailableFunc != nil {
		return m.ListAvailableFunc(ctx)
	}
	return nil, nil
}

func (m *mockDoctorRepo) ListAll(ctx context.Context) ([]models.Doctor, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockDoctorRepo) ListBySpecialization(ctx context.Context, specializationID string) ([]models.Doctor, error) {
	if m.ListBySpecializationFunc != nil {
		return m.ListBySpecializationFunc(ctx, specializationID)
	}
	return nil, nil
}

func (m *mockDoctorRepo) CreateSpecialization(ctx context.Context, sp *models.Specialization) error {
	if m.CreateSpecializationFunc != nil {
		return m.CreateSpecializationFunc(ctx, sp)
	}
	return nil
}

func (m *mockDoctorRepo) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	if m.ListSpecializationsFunc != nil {
		return m.ListSpecializationsFunc(ctx)
	}
	return nil, nil
}

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

type mockAvailabilityRepo struct {
	UpsertFunc            func(ctx context.Context, availability *models.DoctorAvailability) error
	GetByDoctorAndDayFunc func(ctx context.Context, doctorID string, day models.Weekday) (*models.DoctorAvailability, bool, error)
	ListByDoctorFunc      func(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error)
}

var _ availabilityRepo.AvailabilityRepository = (*mockAvailabilityRepo)(nil)

func (m *mockAvailabilityRepo) Upsert(ctx context.Context, availability *models.DoctorAvailability) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, availability)
	}
	return nil
}

func (m *mockAvailabilityRepo) GetByDoctorAndDay(ctx context.Context, doctorID string, day models.Weekday) (*models.DoctorAvailability, bool, error) {
	if m.GetByDoctorAndDayFunc != nil {
		return m.GetByDoctorAndDayFunc(ctx, doctorID, day)
	}
	return nil, false, nil
}

func (m *mockAvailabilityRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func newTestService(repo *mockDoctorRepo, users *mockUserRepo, avail *mockAvailabilityRepo) *DefaultDoctorService {
	if repo == nil {
		repo = &mockDoctorRepo{}
	}
	if users == nil {
		users = &mockUserRepo{}
	}
	if avail == nil {
		avail = &mockAvailabilityRepo{}
	}
	return &DefaultDoctorService{Repo: repo, Users: users, Availability: avail}
}
