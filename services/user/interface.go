package user

import (
	"context"

	userRepo "mentorhub/database/repository/user"
	verificationRepo "mentorhub/database/repository/verification"
	"mentorhub/models"
	"mentorhub/services/notification"
)

// UserService defines account management operations.
type UserService interface {
	// Register stores a pending registration and emails a verification link.
	// No account exists until the link is followed.
	Register(ctx context.Context, req RegisterRequest) error

	// VerifyEmail redeems a verification token, creates the account and
	// signs the new user in.
	VerifyEmail(ctx context.Context, token string) (*AuthResponse, error)

	// Authenticate signs in an (email, role) account with a password.
	Authenticate(ctx context.Context, email, password, role string) (*AuthResponse, error)

	// GoogleSignIn exchanges an OAuth authorization code and signs the
	// account in, creating it on first use.
	GoogleSignIn(ctx context.Context, code, role string) (*AuthResponse, error)

	// RevokeToken invalidates the user's active JWT.
	RevokeToken(ctx context.Context, userID string) error

	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo          userRepo.UserRepository
	Verifications verificationRepo.VerificationRepository
	Notifier      notification.NotificationService
}

func NewDefaultUserService(repo userRepo.UserRepository, verifications verificationRepo.VerificationRepository, notifier notification.NotificationService) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Verifications: verifications, Notifier: notifier}
}

// GetUserByID fetches a user record by ID.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}
