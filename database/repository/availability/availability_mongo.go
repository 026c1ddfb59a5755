package availabilityRepo

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

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &MongoAvailabilityRepo{
		coll: database.DB().Collection("doctor_availability"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// One window per (doctor, weekday).
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("doctor_day_unique"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}

// Upsert inserts or replaces the window for (DoctorID, Day).
func (r *MongoAvailabilityRepo) Upsert(ctx context.Context, availability *models.DoctorAvailability) error {
	filter := bson.M{"doctorId": availability.DoctorID, "day": availability.Day}
	update := bson.M{
		"$set": bson.M{
			"startTime":   availability.StartTime,
			"endTime":     availability.EndTime,
			"isAvailable": availability.IsAvailable,
		},
		"$setOnInsert": bson.M{
			"id":       availability.ID,
			"doctorId": availability.DoctorID,
			"day":      availability.Day,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert availability for doctor %s on %s: %w",
			availability.DoctorID, availability.Day, err)
	}
	return nil
}

// GetByDoctorAndDay resolves the window for one weekday.
func (r *MongoAvailabilityRepo) GetByDoctorAndDay(ctx context.Context, doctorID string, day models.Weekday) (*models.DoctorAvailability, bool, error) {
	var availability models.DoctorAvailability
	err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID, "day": day}).Decode(&availability)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to fetch availability for doctor %s on %s: %w", doctorID, day, err)
	}
	return &availability, true, nil
}

// ListByDoctor returns all configured windows for a doctor.
func (r *MongoAvailabilityRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availability for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.DoctorAvailability
	for cursor.Next(ctx) {
		var w models.DoctorAvailability
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode availability: %w", err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}
