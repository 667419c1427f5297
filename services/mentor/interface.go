package mentor

import (
	"context"

	sessionRepo "mentorhub/database/repository/session"
	userRepo "mentorhub/database/repository/user"
	verificationRepo "mentorhub/database/repository/verification"
	"mentorhub/models"
	"mentorhub/services/notification"
	"mentorhub/services/storage"
)

// VerificationSubmission carries a mentor's credential paperwork. The file
// paths point at temporary local copies of the uploaded documents.
type VerificationSubmission struct {
	GovernmentIDPath   string
	GovernmentIDName   string
	DegreeCertPath     string
	DegreeCertName     string
	AdditionalFilePath string
	AdditionalFileName string
	WorkEmail          string
	LinkedinProfile    string
	AdditionalInfo     string
	GovernmentIDType   string
}

// MentorService covers session authoring and credential verification.
type MentorService interface {
	// CreateSession validates and persists a new bookable session offering.
	CreateSession(ctx context.Context, mentorID string, req models.CreateSessionRequest) (*models.MentorSession, error)

	// ListSessions returns all of a mentor's session offerings.
	ListSessions(ctx context.Context, mentorID string) ([]models.MentorSession, error)

	// SubmitVerification uploads the three credential documents and files the
	// submission for admin review.
	SubmitVerification(ctx context.Context, mentorID string, sub VerificationSubmission) (*models.MentorVerification, error)

	// GetVerification returns the mentor's submission, or nil when none exists.
	GetVerification(ctx context.Context, mentorID string) (*models.MentorVerification, error)

	// DocumentURL resolves a short-lived signed URL for one uploaded document
	// along with the ID of the mentor who owns it. Returns ("", "", nil) when
	// the document does not exist.
	DocumentURL(ctx context.Context, documentID string) (url, ownerID string, err error)

	// Approve marks a mentor's credentials as verified and unlocks sign-in.
	Approve(ctx context.Context, mentorID string) error
}

// DefaultMentorService is the production implementation of MentorService.
type DefaultMentorService struct {
	Sessions      sessionRepo.SessionRepository
	Users         userRepo.UserRepository
	Verifications verificationRepo.VerificationRepository
	Storage       storage.StorageService
	Notifier      notification.NotificationService
}

func NewDefaultMentorService(
	sessions sessionRepo.SessionRepository,
	users userRepo.UserRepository,
	verifications verificationRepo.VerificationRepository,
	store storage.StorageService,
	notifier notification.NotificationService,
) *DefaultMentorService {
	return &DefaultMentorService{
		Sessions:      sessions,
		Users:         users,
		Verifications: verifications,
		Storage:       store,
		Notifier:      notifier,
	}
}
