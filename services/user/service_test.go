package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/models"
)

// fakeUserRepo serves a fixed set of accounts keyed by (email, role).
type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepo) GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Role == role {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateWithDocument(ctx context.Context, id string, update bson.M) error {
	return nil
}

func (r *fakeUserRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error { return nil }

func (r *fakeUserRepo) SetCredentialsVerified(ctx context.Context, id string, verified bool) error {
	return nil
}

func (r *fakeUserRepo) UpsertGoogleUser(ctx context.Context, email, role, refreshToken string, expiry time.Time) (*models.User, error) {
	return nil, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthenticateUnknownAccount(t *testing.T) {
	svc := &DefaultUserService{Repo: &fakeUserRepo{}}

	_, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever1", models.RoleMentee)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: []*models.User{{
		ID: "u1", Email: "grace@example.com", Role: models.RoleMentee,
		PasswordHash: hashOf(t, "correct-horse1"),
	}}}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Authenticate(context.Background(), "grace@example.com", "wrong-horse1", models.RoleMentee)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthenticateSocialAccountHasNoPassword(t *testing.T) {
	repo := &fakeUserRepo{users: []*models.User{{
		ID: "u1", Email: "grace@example.com", Role: models.RoleMentee,
	}}}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Authenticate(context.Background(), "grace@example.com", "anything1", models.RoleMentee)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthenticateMentorAwaitingApproval(t *testing.T) {
	repo := &fakeUserRepo{users: []*models.User{{
		ID: "m1", Email: "mentor@example.com", Role: models.RoleMentor,
		PasswordHash:        hashOf(t, "correct-horse1"),
		CredentialsVerified: false,
	}}}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Authenticate(context.Background(), "mentor@example.com", "correct-horse1", models.RoleMentor)
	var pending CredentialsPendingError
	require.True(t, errors.As(err, &pending))
	assert.Equal(t, "mentor@example.com", pending.Email)
}

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.Error(t, VerifyPasswordComplexity("short1"))
	assert.Error(t, VerifyPasswordComplexity("onlyletters"))
	assert.Error(t, VerifyPasswordComplexity("12345678"))
	assert.NoError(t, VerifyPasswordComplexity("letters123"))
}
