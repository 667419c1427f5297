package verificationRepo

import (
	"context"

	"mentorhub/models"
)

// VerificationRepository persists mentor credential submissions.
type VerificationRepository interface {
	Create(ctx context.Context, verification *models.MentorVerification) error

	// GetByUserID returns (nil, nil) when the mentor has no submission.
	GetByUserID(ctx context.Context, userID string) (*models.MentorVerification, error)

	// GetDocumentByID locates one uploaded document inside any submission.
	// Returns (nil, "", nil) when no document matches.
	GetDocumentByID(ctx context.Context, documentID string) (*models.Document, string, error)

	SetStatus(ctx context.Context, userID, status string) error
}
