package models

import "fmt"

// Weekday is a day-of-week key in a mentor's weekly schedule. The canonical
// ordering is Monday-first, matching ISO-8601 weekday numbering.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// AllWeekdays lists the seven weekdays in canonical Monday-first order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index returns the zero-based Monday-first position of the weekday, or -1 if
// the value is not one of the seven canonical day names.
func (w Weekday) Index() int {
	for i, d := range AllWeekdays {
		if d == w {
			return i
		}
	}
	return -1
}

// Valid reports whether the value is one of the seven canonical day names.
func (w Weekday) Valid() bool {
	return w.Index() >= 0
}

// ParseWeekday converts a day name into a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(s)
	if !w.Valid() {
		return "", fmt.Errorf("invalid day of week %q", s)
	}
	return w, nil
}
