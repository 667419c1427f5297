package user

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/models"
	"mentorhub/utils"
)

const authTokenTTL = 72 * time.Hour

// Authenticate signs in an (email, role) account with a password. Mentors
// whose credentials have not been approved are rejected with
// CredentialsPendingError.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password, role string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if userRec.PasswordHash == "" {
		// Social sign-in account, no password to compare.
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if userRec.Role == models.RoleMentor && !userRec.CredentialsVerified {
		return nil, CredentialsPendingError{Email: userRec.Email}
	}

	return s.issueToken(ctx, userRec)
}

// issueToken generates a fresh JWT, records its hash in Mongo and the auth
// cache, and builds the sign-in response.
func (s *DefaultUserService) issueToken(ctx context.Context, userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, authTokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to sign JWT", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.SetTokenHash(ctx, userRec.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, authTokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:                  userRec.ID,
		Token:               token,
		Email:               userRec.Email,
		Role:                userRec.Role,
		Name:                userRec.Name,
		PhoneNumber:         userRec.PhoneNumber,
		ProfileImage:        userRec.ProfileImage,
		CredentialsVerified: userRec.CredentialsVerified,
	}, nil
}

// RevokeToken clears the user's active token hash, invalidating the JWT even
// before it expires.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("RevokeToken: failed to clear cached token hash", zap.Error(err))
	}
	if err := s.Repo.SetTokenHash(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
