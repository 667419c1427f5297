package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/models"
)

func slot(from, to models.TimeOfDay, id string) models.TimeSlot {
	return models.TimeSlot{From: from, To: to, Available: true, BookingID: id}
}

func TestProjectNextDaysCoversSevenAscendingDates(t *testing.T) {
	schedule := models.WeeklySchedule{
		models.Monday:    {slot(models.NewTimeOfDay(9, 0), models.NewTimeOfDay(10, 0), "a")},
		models.Wednesday: {slot(models.NewTimeOfDay(14, 0), models.NewTimeOfDay(15, 0), "b")},
	}
	// 2025-01-08 is a Wednesday.
	ref := time.Date(2025, 1, 8, 16, 30, 0, 0, time.UTC)

	days := ProjectNextDays(schedule, ref, DefaultProjectionDays)
	require.Len(t, days, 7)

	for i, d := range days {
		wantDate := time.Date(2025, 1, 8+i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, wantDate.Format("2006-01-02"), d.Date)

		// The day name must match the actual calendar date.
		idx := d.DayOfWeek.Index()
		require.NotEqual(t, -1, idx)
		assert.Equal(t, isoWeekday(wantDate), idx+1, "weekday mismatch at position %d", i)
	}
}

func TestProjectNextDaysPlacesWeekdayAtMinimalOffset(t *testing.T) {
	schedule := models.WeeklySchedule{
		models.Monday: {slot(models.NewTimeOfDay(9, 0), models.NewTimeOfDay(10, 0), "a")},
	}
	// Wednesday reference: the next Monday is five days out, the sixth entry.
	ref := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	days := ProjectNextDays(schedule, ref, DefaultProjectionDays)
	require.Len(t, days, 7)

	monday := days[5]
	assert.Equal(t, models.Monday, monday.DayOfWeek)
	assert.Equal(t, "2025-01-13", monday.Date)
	require.Len(t, monday.Slots, 1)
	assert.Equal(t, "a", monday.Slots[0].BookingID)
	assert.Equal(t, 1, monday.AvailableCount)

	// Every other day carries no slots but still appears.
	for i, d := range days {
		if i == 5 {
			continue
		}
		assert.NotNil(t, d.Slots)
		assert.Empty(t, d.Slots)
		assert.Zero(t, d.AvailableCount)
	}
}

func TestProjectNextDaysTodayMatchesTemplate(t *testing.T) {
	schedule := models.WeeklySchedule{
		models.Monday: {slot(models.NewTimeOfDay(9, 0), models.NewTimeOfDay(10, 0), "a")},
	}
	// 2025-01-06 is a Monday: offset 0, the template applies to today.
	ref := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

	days := ProjectNextDays(schedule, ref, DefaultProjectionDays)
	require.Len(t, days, 7)
	assert.Equal(t, models.Monday, days[0].DayOfWeek)
	assert.Equal(t, "2025-01-06", days[0].Date)
	require.Len(t, days[0].Slots, 1)
}

func TestProjectNextDaysSundayReference(t *testing.T) {
	schedule := models.WeeklySchedule{
		models.Sunday: {slot(models.NewTimeOfDay(11, 0), models.NewTimeOfDay(12, 0), "s")},
	}
	// 2025-01-12 is a Sunday (ISO weekday 7).
	ref := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

	days := ProjectNextDays(schedule, ref, DefaultProjectionDays)
	require.Len(t, days, 7)
	assert.Equal(t, models.Sunday, days[0].DayOfWeek)
	assert.Equal(t, 1, days[0].AvailableCount)
	assert.Equal(t, models.Monday, days[1].DayOfWeek)
}

func TestProjectNextDaysIsPure(t *testing.T) {
	schedule := models.WeeklySchedule{
		models.Friday: {
			slot(models.NewTimeOfDay(9, 0), models.NewTimeOfDay(10, 0), "x"),
			slot(models.NewTimeOfDay(10, 0), models.NewTimeOfDay(11, 0), "y"),
		},
	}
	ref := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	first := ProjectNextDays(schedule, ref, DefaultProjectionDays)
	second := ProjectNextDays(schedule, ref, DefaultProjectionDays)
	assert.Equal(t, first, second)

	// The template itself is untouched.
	require.Len(t, schedule[models.Friday], 2)
	assert.Equal(t, "x", schedule[models.Friday][0].BookingID)
}

func TestProjectNextDaysCountsOnlyOpenSlots(t *testing.T) {
	booked := models.TimeSlot{
		From: models.NewTimeOfDay(9, 0), To: models.NewTimeOfDay(10, 0),
		Available: false, BookingID: "taken",
	}
	schedule := models.WeeklySchedule{
		models.Tuesday: {
			booked,
			slot(models.NewTimeOfDay(10, 0), models.NewTimeOfDay(11, 0), "open"),
		},
	}
	// Tuesday reference.
	ref := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)

	days := ProjectNextDays(schedule, ref, DefaultProjectionDays)
	require.Len(t, days[0].Slots, 2, "booked slots stay visible")
	assert.Equal(t, 1, days[0].AvailableCount)
}
