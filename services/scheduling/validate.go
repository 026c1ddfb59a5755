package scheduling

import (
	"context"
	"time"

	availabilityRepo "medibook/database/repository/availability"
	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/utils"
)

// ConflictValidator decides whether a prospective (doctor, date, time)
// triple is bookable. It performs no writes.
type ConflictValidator struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
}

// Validate runs the booking checks in order, stopping at the first
// failure. excludeID, when non-empty, exempts that appointment from the
// occupancy check so updates do not conflict with themselves.
//
// The window check is inclusive at both ends: booking exactly at the
// closing time is accepted, even though the slot generator never offers
// it. Existing clients depend on that asymmetry.
func (v *ConflictValidator) Validate(ctx context.Context, doctorID, date, timeOfDay, excludeID string) error {
	day, err := utils.ParseDate(date)
	if err != nil {
		return InvalidInputError("date must be in YYYY-MM-DD format")
	}
	minutes, err := utils.ParseClock(timeOfDay)
	if err != nil {
		return InvalidInputError("time must be in HH:MM format")
	}

	// Same-day bookings are allowed regardless of the current clock;
	// only strictly earlier dates are rejected. The UTC calendar is the
	// one reference for "today", matching the default date used by slot
	// listings.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return ErrPastDate
	}

	window, found, err := v.Availability.GetByDoctorAndDay(ctx, doctorID, models.WeekdayOf(day))
	if err != nil {
		return err
	}
	if !found || !window.IsAvailable {
		return ErrDoctorUnavailable
	}

	start, err := utils.ParseClock(window.StartTime)
	if err != nil {
		return err
	}
	end, err := utils.ParseClock(window.EndTime)
	if err != nil {
		return err
	}
	if minutes < start || minutes > end {
		return ErrOutsideHours
	}

	taken, err := v.Appointments.ExistsActive(ctx, doctorID, date, timeOfDay, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlotTaken
	}
	return nil
}
