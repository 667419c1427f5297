package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"mentorhub/config"
	"mentorhub/models"
	"mentorhub/utils"
)

func googleOAuthConfig() *oauth2.Config {
	cfg := config.AppConfig
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleSignIn exchanges an OAuth authorization code for tokens, resolves the
// Google account's email and signs the matching (email, role) account in,
// creating it on first use.
func (s *DefaultUserService) GoogleSignIn(ctx context.Context, code, role string) (*AuthResponse, error) {
	oauthCfg := googleOAuthConfig()

	tok, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		utils.GetLogger().Error("GoogleSignIn: code exchange failed", zap.Error(err))
		return nil, fmt.Errorf("google sign-in failed, please try again")
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to build google oauth client: %w", err)
	}
	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		utils.GetLogger().Error("GoogleSignIn: userinfo fetch failed", zap.Error(err))
		return nil, fmt.Errorf("google sign-in failed, please try again")
	}
	if info.Email == "" || info.VerifiedEmail == nil || !*info.VerifiedEmail {
		return nil, fmt.Errorf("google account has no verified email")
	}

	userRec, err := s.Repo.UpsertGoogleUser(ctx, info.Email, role, tok.RefreshToken, tok.Expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert google account: %w", err)
	}

	if userRec.Role == models.RoleMentor && !userRec.CredentialsVerified {
		// A brand new mentor account may still submit documents; block only
		// accounts that already went through submission and were not approved.
		verified, err := s.mentorAwaitingApproval(ctx, userRec.ID)
		if err != nil {
			return nil, err
		}
		if verified {
			return nil, CredentialsPendingError{Email: userRec.Email}
		}
	}

	return s.issueToken(ctx, userRec)
}

// mentorAwaitingApproval reports whether the mentor has a submission on file
// that has not been approved yet.
func (s *DefaultUserService) mentorAwaitingApproval(ctx context.Context, userID string) (bool, error) {
	if s.Verifications == nil {
		return false, nil
	}
	submission, err := s.Verifications.GetByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check verification status: %w", err)
	}
	return submission != nil, nil
}
