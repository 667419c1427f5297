package userRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mentorhub/models"
)

// UserRepository persists platform users. Accounts are unique per
// (email, role) pair.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error)

	// GetByEmailAndRole returns (nil, nil) when no account matches.
	GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error)

	UpdateWithDocument(ctx context.Context, id string, update bson.M) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	SetCredentialsVerified(ctx context.Context, id string, verified bool) error

	// UpsertGoogleUser creates or refreshes a social sign-in account for the
	// (email, role) pair and returns the resulting record.
	UpsertGoogleUser(ctx context.Context, email, role, refreshToken string, expiry time.Time) (*models.User, error)
}
