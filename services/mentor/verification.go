package mentor

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mentorhub/models"
	"mentorhub/services/scheduling"
	"mentorhub/utils"
)

const (
	verificationFolder = "mentor-verification"
	documentURLTTL     = 15 * time.Minute
)

// uploadDocument pushes one local file to storage and returns its metadata.
func (s *DefaultMentorService) uploadDocument(ctx context.Context, localPath, originalName string) (models.Document, error) {
	publicID, err := s.Storage.UploadFile(ctx, localPath, verificationFolder)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to upload %s: %w", originalName, err)
	}

	var size int64
	if info, err := os.Stat(localPath); err == nil {
		size = info.Size()
	}

	return models.Document{
		ID:       uuid.New().String(),
		Filename: originalName,
		PublicID: publicID,
		Size:     size,
		MimeType: mime.TypeByExtension(filepath.Ext(originalName)),
	}, nil
}

// SubmitVerification uploads the three credential documents, files the
// submission and sends a confirmation to the mentor's work address.
func (s *DefaultMentorService) SubmitVerification(ctx context.Context, mentorID string, sub VerificationSubmission) (*models.MentorVerification, error) {
	mentorRec, err := s.Users.GetByID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor: %w", err)
	}
	if mentorRec == nil || mentorRec.Role != models.RoleMentor {
		return nil, &scheduling.NotFoundError{Resource: "mentor", ID: mentorID}
	}

	if existing, err := s.Verifications.GetByUserID(ctx, mentorID); err != nil {
		return nil, fmt.Errorf("failed to check existing submission: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("a verification submission is already on file")
	}

	govID, err := s.uploadDocument(ctx, sub.GovernmentIDPath, sub.GovernmentIDName)
	if err != nil {
		return nil, err
	}
	degree, err := s.uploadDocument(ctx, sub.DegreeCertPath, sub.DegreeCertName)
	if err != nil {
		return nil, err
	}
	additional, err := s.uploadDocument(ctx, sub.AdditionalFilePath, sub.AdditionalFileName)
	if err != nil {
		return nil, err
	}

	verification := &models.MentorVerification{
		UserID:           mentorID,
		GovernmentID:     govID,
		DegreeCert:       degree,
		AdditionalFile:   additional,
		WorkEmail:        sub.WorkEmail,
		LinkedinProfile:  sub.LinkedinProfile,
		AdditionalInfo:   sub.AdditionalInfo,
		GovernmentIDType: sub.GovernmentIDType,
	}
	if err := s.Verifications.Create(ctx, verification); err != nil {
		return nil, fmt.Errorf("failed to file verification: %w", err)
	}

	if sub.WorkEmail != "" {
		if err := s.Notifier.SendMentorSubmissionEmail(ctx, sub.WorkEmail, mentorRec.Name); err != nil {
			utils.GetLogger().Warn("SubmitVerification: failed to enqueue confirmation email", zap.Error(err))
		}
	}

	utils.GetLogger().Info("Mentor verification submitted", zap.String("mentorID", mentorID))
	return verification, nil
}

// GetVerification returns the mentor's submission, or nil when none exists.
func (s *DefaultMentorService) GetVerification(ctx context.Context, mentorID string) (*models.MentorVerification, error) {
	return s.Verifications.GetByUserID(ctx, mentorID)
}

// DocumentURL resolves a short-lived signed URL for one uploaded document
// along with its owning mentor.
func (s *DefaultMentorService) DocumentURL(ctx context.Context, documentID string) (string, string, error) {
	doc, ownerID, err := s.Verifications.GetDocumentByID(ctx, documentID)
	if err != nil {
		return "", "", err
	}
	if doc == nil {
		return "", "", nil
	}
	url, err := s.Storage.GetSecureDownloadURL(ctx, "image", doc.PublicID, documentURLTTL)
	if err != nil {
		return "", "", err
	}
	return url, ownerID, nil
}

// Approve marks the submission approved, unlocks mentor sign-in and notifies
// the mentor.
func (s *DefaultMentorService) Approve(ctx context.Context, mentorID string) error {
	mentorRec, err := s.Users.GetByID(ctx, mentorID)
	if err != nil {
		return fmt.Errorf("failed to fetch mentor: %w", err)
	}
	if mentorRec == nil || mentorRec.Role != models.RoleMentor {
		return &scheduling.NotFoundError{Resource: "mentor", ID: mentorID}
	}

	if err := s.Verifications.SetStatus(ctx, mentorID, models.VerificationApproved); err != nil {
		return err
	}
	if err := s.Users.SetCredentialsVerified(ctx, mentorID, true); err != nil {
		return err
	}

	if err := s.Notifier.SendMentorApprovalEmail(ctx, mentorRec.Email, mentorRec.Name); err != nil {
		utils.GetLogger().Warn("Approve: failed to enqueue approval email", zap.Error(err))
	}

	utils.GetLogger().Info("Mentor credentials approved", zap.String("mentorID", mentorID))
	return nil
}
