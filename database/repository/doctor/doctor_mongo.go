package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll     *mongo.Collection
	specColl *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.DB()
	repo := &MongoDoctorRepo{
		coll:     db.Collection("doctors"),
		specColl: db.Collection("specializations"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoDoctorRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "licenseNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specializationId", Value: 1}, {Key: "isAvailable", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create doctor indexes: %w", err)
	}

	specIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.specColl.Indexes().CreateMany(ctx, specIndexes); err != nil {
		return fmt.Errorf("failed to create specialization indexes: %w", err)
	}
	return nil
}

// Create inserts a new doctor profile.
func (r *MongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateLicense
		}
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

// GetByID retrieves a doctor by its unique ID.
func (r *MongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch doctor with id %s: %w", id, err)
	}
	return &doctor, nil
}

// GetByUserID retrieves the doctor profile owned by a user account.
func (r *MongoDoctorRepo) GetByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&doctor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch doctor for user %s: %w", userID, err)
	}
	return &doctor, nil
}

// UpdateSet applies a partial $set update to an existing doctor document.
func (r *MongoDoctorRepo) UpdateSet(ctx context.Context, id string, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update doctor with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoDoctorRepo) list(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	for cursor.Next(ctx) {
		var d models.Doctor
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

// ListAvailable returns doctors currently open for booking.
func (r *MongoDoctorRepo) ListAvailable(ctx context.Context) ([]models.Doctor, error) {
	return r.list(ctx, bson.M{"isAvailable": true})
}

// ListAll returns every doctor profile, disabled ones included.
func (r *MongoDoctorRepo) ListAll(ctx context.Context) ([]models.Doctor, error) {
	return r.list(ctx, bson.M{})
}

// ListBySpecialization returns available doctors in a specialization.
func (r *MongoDoctorRepo) ListBySpecialization(ctx context.Context, specializationID string) ([]models.Doctor, error) {
	return r.list(ctx, bson.M{"specializationId": specializationID, "isAvailable": true})
}

// CreateSpecialization inserts a new specialization.
func (r *MongoDoctorRepo) CreateSpecialization(ctx context.Context, sp *models.Specialization) error {
	if _, err := r.specColl.InsertOne(ctx, sp); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("specialization %q already exists", sp.Name)
		}
		return fmt.Errorf("failed to create specialization: %w", err)
	}
	return nil
}

// ListSpecializations returns all specializations.
func (r *MongoDoctorRepo) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	cursor, err := r.specColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specializations: %w", err)
	}
	defer cursor.Close(ctx)

	var specs []models.Specialization
	for cursor.Next(ctx) {
		var sp models.Specialization
		if err := cursor.Decode(&sp); err != nil {
			return nil, fmt.Errorf("failed to decode specialization: %w", err)
		}
		specs = append(specs, sp)
	}
	return specs, nil
}
