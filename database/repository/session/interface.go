package sessionRepo

import (
	"context"
	"errors"

	"mentorhub/models"
)

// ErrSlotUnavailable is returned by CommitSlot when the conditional update
// matched nothing: the slot was taken between selection and commit.
var ErrSlotUnavailable = errors.New("slot is no longer available")

// SessionRepository persists mentor sessions, their embedded weekly slots and
// committed booking records.
type SessionRepository interface {
	Create(ctx context.Context, session *models.MentorSession) error
	GetByID(ctx context.Context, id string) (*models.MentorSession, error)
	GetByMentorID(ctx context.Context, mentorID string) ([]models.MentorSession, error)

	// GetBySlotBookingID finds the session owning the slot with the given
	// booking identifier, along with the weekday it sits on. Returns
	// (nil, "", nil) when no slot matches.
	GetBySlotBookingID(ctx context.Context, bookingID string) (*models.MentorSession, models.Weekday, error)

	// CommitSlot atomically flips the slot to unavailable and inserts the
	// booking record in one transaction. Returns ErrSlotUnavailable when the
	// slot was already taken.
	CommitSlot(ctx context.Context, sessionID string, day models.Weekday, booking *models.Booking) error
}
