package scheduling

import (
	"time"

	"mentorhub/models"
)

// DefaultProjectionDays is the booking window shown to mentees.
const DefaultProjectionDays = 7

// ProjectNextDays maps a recurring weekly template onto the next n calendar
// days starting at ref's date. Each weekday key is placed at its minimal
// non-negative offset from ref (0 when today matches), so the result is
// ordered by actual calendar date, never by day-name. Days the template does
// not cover still appear, with an empty slot list.
//
// The function is pure: it never mutates the schedule and may be called
// concurrently by any number of readers.
func ProjectNextDays(schedule models.WeeklySchedule, ref time.Time, n int) []models.ProjectedDay {
	if n <= 0 {
		n = DefaultProjectionDays
	}

	base := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	refWeekday := isoWeekday(ref)

	out := make([]models.ProjectedDay, n)
	for _, day := range models.AllWeekdays {
		// Minimal non-negative distance from ref's date to the next
		// occurrence of this weekday.
		offset := ((day.Index() + 1) - refWeekday + 7) % 7
		for pos := offset; pos < n; pos += 7 {
			slots := schedule[day]
			if slots == nil {
				slots = []models.TimeSlot{}
			}
			out[pos] = models.ProjectedDay{
				Date:           base.AddDate(0, 0, pos).Format("2006-01-02"),
				DayOfWeek:      day,
				Slots:          slots,
				AvailableCount: CountAvailable(slots),
			}
		}
	}
	return out
}

// isoWeekday returns ref's ISO-8601 weekday (1=Monday .. 7=Sunday).
func isoWeekday(ref time.Time) int {
	wd := int(ref.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
