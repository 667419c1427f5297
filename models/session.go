package models

import "time"

// TimeSlot represents a bookable window on one weekday of a mentor's
// recurring template. Once a booking commits, Available flips to false and the
// slot is never physically deleted.
type TimeSlot struct {
	From      TimeOfDay `bson:"from" json:"from"`
	To        TimeOfDay `bson:"to" json:"to"`
	Available bool      `bson:"available" json:"available"`
	BookingID string    `bson:"bookingId" json:"bookingId"` // unique across the whole system
}

// WeeklySchedule maps each offered weekday to its ordered slot sequence.
// Slots within a day are sorted by From and never overlap.
type WeeklySchedule map[Weekday][]TimeSlot

// MentorSession is a bookable session offering owned by a mentor.
// DurationMinutes drives display formatting only; slot width is defined
// independently per TimeSlot.
type MentorSession struct {
	ID              string         `bson:"id" json:"id"`
	MentorID        string         `bson:"mentor_id" json:"mentor_id"`
	Name            string         `bson:"name" json:"name"`
	Description     string         `bson:"description" json:"description"`
	DurationMinutes int            `bson:"durationMinutes" json:"durationMinutes"`
	TimeSlots       WeeklySchedule `bson:"timeSlots" json:"timeSlots"`
	CreatedAt       time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `bson:"updated_at" json:"updated_at"`
}

// ProjectedDay is the derived next-7-days view of one calendar date. It is
// computed on demand and never persisted.
type ProjectedDay struct {
	Date           string     `json:"date"` // "YYYY-MM-DD"
	DayOfWeek      Weekday    `json:"dayOfWeek"`
	Slots          []TimeSlot `json:"slots"`
	AvailableCount int        `json:"availableCount"`
}

// CreateSessionRequest is the payload for a mentor defining a new session.
type CreateSessionRequest struct {
	Name            string         `json:"name" binding:"required"`
	Description     string         `json:"description"`
	DurationMinutes int            `json:"durationMinutes" binding:"required"`
	TimeSlots       WeeklySchedule `json:"timeSlots" binding:"required"`
}
