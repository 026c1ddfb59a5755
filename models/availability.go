package models

import (
	"strings"
	"time"
)

// Weekday is a locale-independent lowercase day name used as the
// availability lookup key.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekdayOf derives the Weekday for a calendar date.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(strings.ToLower(t.Weekday().String()))
}

// ValidWeekday reports whether d names one of the seven days.
func ValidWeekday(d Weekday) bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// DoctorAvailability is a doctor's open window for one weekday.
// Unique per (doctor, day). StartTime and EndTime are zero-padded
// 24-hour "HH:MM" strings; StartTime must precede EndTime whenever
// IsAvailable is set.
type DoctorAvailability struct {
	ID          string  `bson:"id" json:"id"`
	DoctorID    string  `bson:"doctorId" json:"doctorId"`
	Day         Weekday `bson:"day" json:"day"`
	StartTime   string  `bson:"startTime" json:"startTime"`
	EndTime     string  `bson:"endTime" json:"endTime"`
	IsAvailable bool    `bson:"isAvailable" json:"isAvailable"`
}

// AvailabilityEntry is one weekday window in a SetAvailability payload.
type AvailabilityEntry struct {
	Day         Weekday `json:"day" binding:"required"`
	StartTime   string  `json:"startTime" binding:"required"`
	EndTime     string  `json:"endTime" binding:"required"`
	IsAvailable bool    `json:"isAvailable"`
}
