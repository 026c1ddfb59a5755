package scheduling

import (
	"context"
	"errors"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// SlotDurationMinutes is the fixed length of a bookable slot.
const SlotDurationMinutes = 30

// AvailableSlots enumerates the open start times for a doctor on a date,
// ascending, formatted as zero-padded 24-hour "HH:MM".
//
// No availability record, or a disabled one, yields an empty list rather
// than an error; so does a fully booked window. Slot stepping is
// end-exclusive: a window whose length is not a multiple of 30 minutes
// drops the trailing partial slot, and the closing time itself is never
// offered (the validator's window check, by contrast, is end-inclusive).
func (s *DefaultSchedulingService) AvailableSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	logger := utils.GetLogger()

	if _, err := s.Doctors.GetByID(ctx, doctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, NotFoundError("doctor")
		}
		return nil, err
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, InvalidInputError("date must be in YYYY-MM-DD format")
	}

	window, found, err := s.Availability.GetByDoctorAndDay(ctx, doctorID, models.WeekdayOf(day))
	if err != nil {
		return nil, err
	}
	if !found || !window.IsAvailable {
		return []string{}, nil
	}

	start, err := utils.ParseClock(window.StartTime)
	if err != nil {
		logger.Error("stored availability window has a malformed start time",
			zap.String("doctorID", doctorID), zap.String("startTime", window.StartTime), zap.Error(err))
		return nil, err
	}
	end, err := utils.ParseClock(window.EndTime)
	if err != nil {
		logger.Error("stored availability window has a malformed end time",
			zap.String("doctorID", doctorID), zap.String("endTime", window.EndTime), zap.Error(err))
		return nil, err
	}

	taken, err := s.Appointments.ActiveTimes(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for current := start; current < end; current += SlotDurationMinutes {
		slot := utils.FormatClock(current)
		if _, booked := taken[slot]; booked {
			continue
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
