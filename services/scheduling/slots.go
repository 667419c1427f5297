package scheduling

import (
	"sort"

	"github.com/google/uuid"

	"mentorhub/models"
)

// ValidateSlot checks a single slot's time range.
func ValidateSlot(day models.Weekday, slot models.TimeSlot) error {
	if !slot.From.Valid() || !slot.To.Valid() || slot.From >= slot.To {
		return &InvalidRangeError{Day: day, Slot: slot}
	}
	return nil
}

// ValidateSchedule checks every slot range, per-day ordering and overlaps
// without modifying the schedule.
func ValidateSchedule(schedule models.WeeklySchedule) error {
	for day, slots := range schedule {
		for i, slot := range slots {
			if err := ValidateSlot(day, slot); err != nil {
				return err
			}
			if i == 0 {
				continue
			}
			if slots[i-1].From > slot.From {
				return &UnsortedError{Day: day}
			}
			if slots[i-1].To > slot.From {
				return &OverlapError{Day: day, First: slots[i-1], Second: slot}
			}
		}
	}
	return nil
}

// NormalizeSchedule sorts each day's slots stably by start time, validates the
// result, and assigns a fresh booking identifier to any slot missing one.
// New slots start out available. Returns the normalized schedule.
func NormalizeSchedule(schedule models.WeeklySchedule) (models.WeeklySchedule, error) {
	normalized := make(models.WeeklySchedule, len(schedule))
	for day, slots := range schedule {
		if _, err := models.ParseWeekday(string(day)); err != nil {
			return nil, err
		}
		sorted := make([]models.TimeSlot, len(slots))
		copy(sorted, slots)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].From < sorted[j].From
		})
		for i := range sorted {
			if sorted[i].BookingID == "" {
				sorted[i].BookingID = uuid.New().String()
				sorted[i].Available = true
			}
		}
		normalized[day] = sorted
	}
	if err := ValidateSchedule(normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// CountAvailable returns how many of the given slots are still open.
func CountAvailable(slots []models.TimeSlot) int {
	n := 0
	for _, s := range slots {
		if s.Available {
			n++
		}
	}
	return n
}
