package notification

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"mentorhub/models"
	"mentorhub/services/tasks"
	"mentorhub/utils"
)

// NotificationService defines methods for sending transactional email.
// Messages are enqueued and delivered asynchronously by the mail worker.
type NotificationService interface {
	SendEmail(ctx context.Context, payload models.EmailPayload) error
	SendSignupVerificationEmail(ctx context.Context, to, verifyLink string) error
	SendMentorSubmissionEmail(ctx context.Context, workEmail, name string) error
	SendMentorApprovalEmail(ctx context.Context, to, name string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	client *asynq.Client
}

func NewDefaultNotificationService(client *asynq.Client) (*DefaultNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: asynq client is nil")
	}
	return &DefaultNotificationService{client: client}, nil
}

// SendEmail enqueues an email for background delivery.
func (s *DefaultNotificationService) SendEmail(ctx context.Context, payload models.EmailPayload) error {
	task, err := tasks.NewEmailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}
	info, err := s.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue email to %s: %w", payload.To, err)
	}
	utils.GetLogger().Debug("Enqueued email", zap.String("to", payload.To), zap.String("taskID", info.ID))
	return nil
}

// SendSignupVerificationEmail sends the account activation link.
func (s *DefaultNotificationService) SendSignupVerificationEmail(ctx context.Context, to, verifyLink string) error {
	return s.SendEmail(ctx, models.EmailPayload{
		To:      to,
		Subject: "Verify your email address",
		HTML: fmt.Sprintf(`<p>Welcome! Please confirm your email address to activate your account.</p>
<p><a href="%s">Verify my email</a></p>
<p>If you did not sign up, you can ignore this message.</p>`, verifyLink),
	})
}

// SendMentorSubmissionEmail confirms receipt of a mentor's credential
// submission at their work address.
func (s *DefaultNotificationService) SendMentorSubmissionEmail(ctx context.Context, workEmail, name string) error {
	return s.SendEmail(ctx, models.EmailPayload{
		To:      workEmail,
		Subject: "Your mentor verification is under review",
		HTML: fmt.Sprintf(`<p>Hi %s,</p>
<p>We received your verification documents. Our team will review them and get back to you shortly.</p>`, name),
	})
}

// SendMentorApprovalEmail notifies a mentor that their credentials were approved.
func (s *DefaultNotificationService) SendMentorApprovalEmail(ctx context.Context, to, name string) error {
	return s.SendEmail(ctx, models.EmailPayload{
		To:      to,
		Subject: "You are now a verified mentor",
		HTML: fmt.Sprintf(`<p>Hi %s,</p>
<p>Your credentials were approved. You can now sign in and publish mentoring sessions.</p>`, name),
	})
}
