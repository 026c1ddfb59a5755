package scheduling

import (
	"context"
	"testing"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableSlotsEnumeratesHalfHourSteps(t *testing.T) {
	svc := newTestService(nil, fixedWindow("09:00", "10:00", true), nil)

	slots, err := svc.AvailableSlots(context.Background(), "doc-1", "2030-06-03")
	require.NoError(t, err)
	// The closing time is never offered as a start.
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestAvailableSlotsSkipsBookedTimes(t *testing.T) {
	appts := &mockAppointmentRepo{
		ActiveTimesFunc: func(ctx context.Context, doctorID, date string) (map[string]struct{}, error) {
			return map[string]struct{}{"09:30": {}, "10:30": {}}, nil
		},
	}
	svc := newTestService(appts, fixedWindow("09:00", "11:00", true), nil)

	slots, err := svc.AvailableSlots(context.Background(), "doc-1", "2030-06-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, slots)
}

func TestAvailableSlotsDropsTrailingPartialSlot(t *testing.T) {
	svc := newTestService(nil, fixedWindow("09:00", "10:15", true), nil)

	slots, err := svc.AvailableSlots(context.Background(), "doc-1", "2030-06-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slots)
}

func TestAvailableSlotsEmptyWhenNoWindow(t *testing.T) {
	avail := &mockAvailabilityRepo{
		GetByDoctorAndDayFunc: func(ctx context.Context, doctorID string, day models.Weekday) (*models.DoctorAvailability, bool, error) {
			return nil, false, nil
		},
	}
	svc := newTestService(nil, avail, nil)

	slots, err := svc.AvailableSlots(context.Background(), "doc-1", "2030-06-03")
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestAvailableSlotsEmptyWhenWindowDisabled(t *testing.T) {
	svc := newTestService(nil, fixedWindow("09:00", "17:00", false), nil)

	slots, err := svc.AvailableSlots(context.Background(), "doc-1", "2030-06-03")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsEmptyWhenFullyBooked(t *testing.T) {
	appts := &mockAppointmentRepo{
		ActiveTimesFunc: func(ctx context.Context, doctorID, date string) (map[string]struct{}, error) {
			return map[string]struct{}{"09:00": {}, "09:30": {}}, nil
		},
	}
	svc := newTestService(appts, fixedWindow("09:00", "10:00", true), nil)

	slots, err := svc.AvailableSlots(context.Background(), "doc-1", "2030-06-03")
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestAvailableSlotsUnknownDoctor(t *testing.T) {
	doctors := &mockDoctorRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Doctor, error) {
			return nil, doctorRepo.ErrNotFound
		},
	}
	svc := newTestService(nil, fixedWindow("09:00", "17:00", true), doctors)

	_, err := svc.AvailableSlots(context.Background(), "missing", "2030-06-03")
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestAvailableSlotsRejectsMalformedDate(t *testing.T) {
	svc := newTestService(nil, fixedWindow("09:00", "17:00", true), nil)

	_, err := svc.AvailableSlots(context.Background(), "doc-1", "June 3rd")
	assert.Equal(t, CodeInvalidInput, CodeOf(err))
}
