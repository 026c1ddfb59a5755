package models

import "time"

// Specialization is a medical discipline doctors are grouped under.
type Specialization struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Doctor is the bookable profile attached to a doctor-role user.
type Doctor struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"userId" json:"userId"`
	SpecializationID string    `bson:"specializationId" json:"specializationId"`
	LicenseNumber    string    `bson:"licenseNumber" json:"licenseNumber"`
	ExperienceYears  int       `bson:"experienceYears" json:"experienceYears"`
	Bio              string    `bson:"bio,omitempty" json:"bio,omitempty"`
	ConsultationFee  float64   `bson:"consultationFee" json:"consultationFee"`
	IsAvailable      bool      `bson:"isAvailable" json:"isAvailable"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DoctorCreateRequest is the admin payload for creating a doctor profile
// on top of an existing user account.
type DoctorCreateRequest struct {
	UserID           string  `json:"userId" binding:"required"`
	SpecializationID string  `json:"specializationId" binding:"required"`
	LicenseNumber    string  `json:"licenseNumber" binding:"required"`
	ExperienceYears  int     `json:"experienceYears"`
	Bio              string  `json:"bio"`
	ConsultationFee  float64 `json:"consultationFee" binding:"required"`
}

// DoctorUpdateRequest carries the mutable doctor profile fields.
// Pointer fields distinguish "absent" from zero values.
type DoctorUpdateRequest struct {
	SpecializationID *string  `json:"specializationId"`
	ExperienceYears  *int     `json:"experienceYears"`
	Bio              *string  `json:"bio"`
	ConsultationFee  *float64 `json:"consultationFee"`
	IsAvailable      *bool    `json:"isAvailable"`
}
