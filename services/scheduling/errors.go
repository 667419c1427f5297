package scheduling

import (
	"errors"
	"fmt"

	"mentorhub/models"
)

// InvalidRangeError reports a slot whose start is not strictly before its end.
type InvalidRangeError struct {
	Day  models.Weekday
	Slot models.TimeSlot
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid slot range on %s: %s must be before %s", e.Day, e.Slot.From, e.Slot.To)
}

// OverlapError reports two slots on the same day that overlap.
type OverlapError struct {
	Day    models.Weekday
	First  models.TimeSlot
	Second models.TimeSlot
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping slots on %s: %s-%s and %s-%s",
		e.Day, e.First.From, e.First.To, e.Second.From, e.Second.To)
}

// UnsortedError reports a day whose slots are not ordered by start time.
type UnsortedError struct {
	Day models.Weekday
}

func (e *UnsortedError) Error() string {
	return fmt.Sprintf("slots on %s are not sorted by start time", e.Day)
}

// NotFoundError reports an identifier that matches no known resource.
type NotFoundError struct {
	Resource string // "session" or "slot"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// AlreadyBookedError is the benign conflict returned to every loser of a
// booking race. It is not a system fault; the client should offer re-selection.
type AlreadyBookedError struct {
	BookingID string
}

func (e *AlreadyBookedError) Error() string {
	return fmt.Sprintf("slot %q is no longer available", e.BookingID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is an AlreadyBookedError.
func IsConflict(err error) bool {
	var ab *AlreadyBookedError
	return errors.As(err, &ab)
}
