package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	sessionRepo "mentorhub/database/repository/session"
	"mentorhub/models"
	"mentorhub/utils"
)

// SessionView bundles a mentor session with its derived next-7-days view.
type SessionView struct {
	Session    *models.MentorSession `json:"session"`
	Projection []models.ProjectedDay `json:"projection"`
}

// SchedulingEngine exposes the booking window to mentees and commits slot
// selections.
type SchedulingEngine interface {
	SessionView(ctx context.Context, sessionID string, now time.Time) (*SessionView, error)
	CommitBooking(ctx context.Context, bookingID, menteeID string) (*models.Booking, error)
}

// DefaultSchedulingEngine is the concrete implementation backed by the
// session repository.
type DefaultSchedulingEngine struct {
	Repo sessionRepo.SessionRepository
}

// SessionView loads a session and projects its weekly template onto the next
// seven calendar days.
func (se *DefaultSchedulingEngine) SessionView(ctx context.Context, sessionID string, now time.Time) (*SessionView, error) {
	session, err := se.Repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, &NotFoundError{Resource: "session", ID: sessionID}
	}
	return &SessionView{
		Session:    session,
		Projection: ProjectNextDays(session.TimeSlots, now, DefaultProjectionDays),
	}, nil
}

// CommitBooking validates the selected slot is still open and transitions it
// Open -> Booked. The availability check runs again inside the storage-level
// conditional update, so of N concurrent commits on the same bookingID exactly
// one succeeds; every loser gets AlreadyBookedError.
func (se *DefaultSchedulingEngine) CommitBooking(ctx context.Context, bookingID, menteeID string) (*models.Booking, error) {
	session, day, err := se.Repo.GetBySlotBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up slot: %w", err)
	}
	if session == nil {
		return nil, &NotFoundError{Resource: "slot", ID: bookingID}
	}

	var slot models.TimeSlot
	for _, s := range session.TimeSlots[day] {
		if s.BookingID == bookingID {
			slot = s
			break
		}
	}
	if !slot.Available {
		return nil, &AlreadyBookedError{BookingID: bookingID}
	}

	booking := &models.Booking{
		BookingID:   bookingID,
		SessionID:   session.ID,
		MentorID:    session.MentorID,
		MenteeID:    menteeID,
		Day:         day,
		From:        slot.From,
		To:          slot.To,
		CommittedAt: time.Now(),
	}

	if err := se.Repo.CommitSlot(ctx, session.ID, day, booking); err != nil {
		if errors.Is(err, sessionRepo.ErrSlotUnavailable) {
			return nil, &AlreadyBookedError{BookingID: bookingID}
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	utils.GetLogger().Info("booking committed",
		zap.String("bookingId", bookingID),
		zap.String("sessionId", session.ID),
		zap.String("menteeId", menteeID))

	return booking, nil
}
