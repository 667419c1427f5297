package mentor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mentorhub/models"
	"mentorhub/services/scheduling"
	"mentorhub/utils"
)

// CreateSession validates the weekly template, assigns booking IDs to every
// slot and persists the offering.
func (s *DefaultMentorService) CreateSession(ctx context.Context, mentorID string, req models.CreateSessionRequest) (*models.MentorSession, error) {
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("durationMinutes must be positive")
	}

	schedule, err := scheduling.NormalizeSchedule(req.TimeSlots)
	if err != nil {
		return nil, err
	}

	session := &models.MentorSession{
		MentorID:        mentorID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		TimeSlots:       schedule,
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	totalSlots := 0
	for _, slots := range schedule {
		totalSlots += scheduling.CountAvailable(slots)
	}
	utils.GetLogger().Info("Mentor session created",
		zap.String("sessionID", session.ID),
		zap.String("mentorID", mentorID),
		zap.Int("slots", totalSlots))
	return session, nil
}

// ListSessions returns all of a mentor's session offerings.
func (s *DefaultMentorService) ListSessions(ctx context.Context, mentorID string) ([]models.MentorSession, error) {
	sessions, err := s.Sessions.GetByMentorID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for mentor %s: %w", mentorID, err)
	}
	return sessions, nil
}
