package scheduling

import (
	"context"

	appointmentRepo "medibook/database/repository/appointment"
	availabilityRepo "medibook/database/repository/availability"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

type mockAppointmentRepo struct {
	CreateFunc        func(ctx context.Context, appointment *models.Appointment) error
	GetByIDFunc       func(ctx context.Context, id string) (*models.Appointment, error)
	UpdateSetFunc     func(ctx context.Context, id string, fields bson.M) error
	ExistsActiveFunc  func(ctx context.Context, doctorID, date, timeOfDay, excludeID string) (bool, error)
	ActiveTimesFunc   func(ctx context.Context, doctorID, date string) (map[string]struct{}, error)
	ListByPatientFunc func(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctorFunc  func(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListAllFunc       func(ctx context.Context) ([]models.Appointment, error)
}

var _ appointmentRepo.AppointmentRepository = (*mockAppointmentRepo)(nil)

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, appointmentRepo.ErrNotFound
}

func (m *mockAppointmentRepo) UpdateSet(ctx context.Context, id string, fields bson.M) error {
	if m.UpdateSetFunc != nil {
		return m.UpdateSetFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockAppointmentRepo) ExistsActive(ctx context.Context, doctorID, date, timeOfDay, excludeID string) (bool, error) {
	if m.ExistsActiveFunc != nil {
		return m.ExistsActiveFunc(ctx, doctorID, date, timeOfDay, excludeID)
	}
	return false, nil
}

func (m *mockAppointmentRepo) ActiveTimes(ctx context.Context, doctorID, date string) (map[string]struct{}, error) {
	if m.ActiveTimesFunc != nil {
		return m.ActiveTimesFunc(ctx, doctorID, date)
	}
	return map[string]struct{}{}, nil
}

func (m *mockAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
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
	return &models.Doctor{ID: id, IsAvailable: true}, nil
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

// newTestService wires a scheduling service over the given mocks,
// defaulting any nil mock to an empty one.
func newTestService(appts *mockAppointmentRepo, avail *mockAvailabilityRepo, doctors *mockDoctorRepo) *DefaultSchedulingService {
	if appts == nil {
		appts = &mockAppointmentRepo{}
	}
	if avail == nil {
		avail = &mockAvailabilityRepo{}
	}
	if doctors == nil {
		doctors = &mockDoctorRepo{}
	}
	return NewSchedulingService(appts, avail, doctors)
}

// fixedWindow returns an availability mock that serves the same window
// for every weekday.
func fixedWindow(startTime, endTime string, enabled bool) *mockAvailabilityRepo {
	return &mockAvailabilityRepo{
		GetByDoctorAndDayFunc: func(ctx context.Context, doctorID string, day models.Weekday) (*models.DoctorAvailability, bool, error) {
			return &models.DoctorAvailability{
				DoctorID:    doctorID,
				Day:         day,
				StartTime:   startTime,
				EndTime:     endTime,
				IsAvailable: enabled,
			}, true, nil
		},
	}
}
