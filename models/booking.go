package models

import "time"

// Booking represents a committed booking record. Created exactly once per
// successful commit and immutable thereafter.
type Booking struct {
	BookingID   string    `bson:"bookingId" json:"bookingId"` // same identifier the slot carries
	SessionID   string    `bson:"session_id" json:"session_id"`
	MentorID    string    `bson:"mentor_id" json:"mentor_id"`
	MenteeID    string    `bson:"mentee_id" json:"mentee_id"`
	Day         Weekday   `bson:"day" json:"day"`
	From        TimeOfDay `bson:"from" json:"from"`
	To          TimeOfDay `bson:"to" json:"to"`
	CommittedAt time.Time `bson:"committed_at" json:"committed_at"`
}
