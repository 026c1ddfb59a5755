package models

import "time"

// AppointmentStatus is the closed set of lifecycle states.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Active reports whether s still occupies its slot. Only pending and
// confirmed appointments block other bookings at the same
// (doctor, date, time).
func (s AppointmentStatus) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Appointment is a booked (doctor, date, time) slot. Date is
// "2006-01-02", Time is zero-padded 24-hour "HH:MM". Cancellation is a
// status flip, never a row removal.
type Appointment struct {
	ID        string            `bson:"id" json:"id"`
	PatientID string            `bson:"patientId" json:"patientId"`
	DoctorID  string            `bson:"doctorId" json:"doctorId"`
	Date      string            `bson:"date" json:"date"`
	Time      string            `bson:"time" json:"time"`
	Status    AppointmentStatus `bson:"status" json:"status"`
	Symptoms  string            `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Notes     string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentCreateRequest is the booking payload. The patient identity
// is never taken from the payload; it is forced to the caller.
type AppointmentCreateRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Symptoms string `json:"symptoms"`
	Notes    string `json:"notes"`
}

// StatusUpdateRequest carries a requested lifecycle transition.
type StatusUpdateRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}

// NotesUpdateRequest updates free-text notes outside the state machine.
type NotesUpdateRequest struct {
	Notes string `json:"notes"`
}
