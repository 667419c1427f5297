package scheduling

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/models"
)

func TestValidateSlotRejectsInvertedRange(t *testing.T) {
	err := ValidateSlot(models.Monday, models.TimeSlot{
		From: models.NewTimeOfDay(10, 0),
		To:   models.NewTimeOfDay(9, 0),
	})
	var invalid *InvalidRangeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, models.Monday, invalid.Day)
}

func TestValidateSlotRejectsZeroWidth(t *testing.T) {
	err := ValidateSlot(models.Monday, models.TimeSlot{
		From: models.NewTimeOfDay(9, 0),
		To:   models.NewTimeOfDay(9, 0),
	})
	var invalid *InvalidRangeError
	assert.True(t, errors.As(err, &invalid))
}

func TestValidateScheduleDetectsOverlap(t *testing.T) {
	schedule := models.WeeklySchedule{
		models.Tuesday: {
			slot(models.NewTimeOfDay(9, 0), models.NewTimeOfDay(10, 30), "a"),
			slot(models.NewTimeOfDay(10, 0), models.NewTimeOfDay(11, 0), "b"),
		},
	}
	err := ValidateSchedule(schedule)
	var overlap *OverlapError
	require.True(t, errors.As(err, &overlap))
	assert.Equal(t, models.Tuesday, overlap.Day)
}

func TestValidateScheduleAllowsTouchingSlots(t *testing.T) {
	schedule := models.WeeklySchedule{
		models.Tuesday: {
			slot(models.NewTimeOfDay(9, 0), models.NewTimeOfDay(10, 0), "a"),
			slot(models.NewTimeOfDay(10, 0), models.NewTimeOfDay(11, 0), "b"),
		},
	}
	assert.NoError(t, ValidateSchedule(schedule))
}

func TestValidateScheduleDetectsUnsorted(t *testing.T) {
	schedule := models.WeeklySchedule{
		models.Thursday: {
			slot(models.NewTimeOfDay(14, 0), models.NewTimeOfDay(15, 0), "b"),
			slot(models.NewTimeOfDay(9, 0), models.NewTimeOfDay(10, 0), "a"),
		},
	}
	err := ValidateSchedule(schedule)
	var unsorted *UnsortedError
	assert.True(t, errors.As(err, &unsorted))
}

func TestNormalizeScheduleSortsAndAssignsIDs(t *testing.T) {
	schedule := models.WeeklySchedule{
		models.Friday: {
			{From: models.NewTimeOfDay(14, 0), To: models.NewTimeOfDay(15, 0)},
			{From: models.NewTimeOfDay(9, 0), To: models.NewTimeOfDay(10, 0)},
		},
	}

	normalized, err := NormalizeSchedule(schedule)
	require.NoError(t, err)

	slots := normalized[models.Friday]
	require.Len(t, slots, 2)
	assert.True(t, slots[0].From < slots[1].From)
	for _, s := range slots {
		assert.NotEmpty(t, s.BookingID)
		assert.True(t, s.Available)
	}
	assert.NotEqual(t, slots[0].BookingID, slots[1].BookingID)

	// Input slices are not reordered in place.
	assert.Equal(t, models.NewTimeOfDay(14, 0), schedule[models.Friday][0].From)
}

func TestNormalizeScheduleKeepsExistingIDs(t *testing.T) {
	booked := models.TimeSlot{
		From: models.NewTimeOfDay(9, 0), To: models.NewTimeOfDay(10, 0),
		Available: false, BookingID: "existing",
	}
	normalized, err := NormalizeSchedule(models.WeeklySchedule{models.Monday: {booked}})
	require.NoError(t, err)

	got := normalized[models.Monday][0]
	assert.Equal(t, "existing", got.BookingID)
	assert.False(t, got.Available, "normalization never reopens a booked slot")
}

func TestNormalizeScheduleRejectsUnknownDay(t *testing.T) {
	_, err := NormalizeSchedule(models.WeeklySchedule{
		"Funday": {slot(models.NewTimeOfDay(9, 0), models.NewTimeOfDay(10, 0), "a")},
	})
	assert.Error(t, err)
}

func TestCountAvailable(t *testing.T) {
	slots := []models.TimeSlot{
		{Available: true}, {Available: false}, {Available: true},
	}
	assert.Equal(t, 2, CountAvailable(slots))
	assert.Zero(t, CountAvailable(nil))
}
