// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func activeStatuses() bson.A {
	return bson.A{models.StatusPending, models.StatusConfirmed}
}

// ExistsActive reports whether a pending or confirmed appointment
// occupies (doctorID, date, timeOfDay), excluding excludeID when set.
func (r *MongoAppointmentRepo) ExistsActive(ctx context.Context, doctorID, date, timeOfDay, excludeID string) (bool, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"time":     timeOfDay,
		"status":   bson.M{"$in": activeStatuses()},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check slot occupancy: %w", err)
	}
	return count > 0, nil
}

// ActiveTimes returns the occupied "HH:MM" times for a doctor on a date.
func (r *MongoAppointmentRepo) ActiveTimes(ctx context.Context, doctorID, date string) (map[string]struct{}, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"status":   bson.M{"$in": activeStatuses()},
	}
	opts := options.Find().SetProjection(bson.M{"time": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch occupied times: %w", err)
	}
	defer cursor.Close(ctx)

	taken := make(map[string]struct{})
	for cursor.Next(ctx) {
		var doc struct {
			Time string `bson:"time"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode occupied time: %w", err)
		}
		taken[doc.Time] = struct{}{}
	}
	return taken, nil
}

func (r *MongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

// ListByPatient returns a patient's appointments ordered by date and time.
func (r *MongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"patientId": patientID})
}

// ListByDoctor returns a doctor's schedule ordered by date and time.
func (r *MongoAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"doctorId": doctorID})
}

// ListAll returns every appointment ordered by date and time.
func (r *MongoAppointmentRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{})
}
