package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/config"
	"mentorhub/models"
	"mentorhub/utils"
)

const (
	pendingKeyPrefix = "pending:"
	pendingTTL       = 24 * time.Hour
)

// Register validates the request, parks the registration in Redis and emails
// a verification link. The account is only created once the link is followed.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) error {
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return err
	}

	existing, err := s.Repo.GetByEmailAndRole(ctx, req.Email, req.Role)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check existing account", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return DuplicateAccountError{Email: req.Email, Role: req.Role}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	pending := models.PendingUser{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
		CreatedAt:    time.Now(),
	}
	payload, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to encode pending registration: %w", err)
	}

	token := uuid.New().String()
	client := utils.GetPendingCacheClient()
	if err := client.Set(ctx, pendingKeyPrefix+token, payload, pendingTTL).Err(); err != nil {
		utils.GetLogger().Error("Register: failed to store pending registration", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}

	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", config.AppConfig.FrontendBaseURL, token)
	if err := s.Notifier.SendSignupVerificationEmail(ctx, req.Email, verifyLink); err != nil {
		utils.GetLogger().Error("Register: failed to enqueue verification email", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}

	utils.GetLogger().Info("Registration pending email verification",
		zap.String("email", req.Email), zap.String("role", req.Role))
	return nil
}

// VerifyEmail redeems a verification token. On success the pending entry is
// consumed, the account is created and the user is signed in.
func (s *DefaultUserService) VerifyEmail(ctx context.Context, token string) (*AuthResponse, error) {
	client := utils.GetPendingCacheClient()
	key := pendingKeyPrefix + token

	payload, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrVerificationExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up verification token: %w", err)
	}

	var pending models.PendingUser
	if err := json.Unmarshal([]byte(payload), &pending); err != nil {
		return nil, fmt.Errorf("failed to decode pending registration: %w", err)
	}

	newUser := &models.User{
		Email:        pending.Email,
		Role:         pending.Role,
		Name:         pending.Name,
		PasswordHash: pending.PasswordHash,
		PhoneNumber:  pending.PhoneNumber,
		Status:       "active",
	}
	if err := s.Repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("VerifyEmail: failed to delete pending entry", zap.Error(err))
	}

	// Mentors still need credential approval before they can sign in again,
	// but the initial session lets them submit their documents.
	return s.issueToken(ctx, newUser)
}
