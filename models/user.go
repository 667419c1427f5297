package models

import "time"

// Platform roles. A single person may hold separate mentee and mentor accounts
// under the same email; accounts are unique per (email, role) pair.
const (
	RoleMentee = "mentee"
	RoleMentor = "mentor"
	RoleAdmin  = "admin"
)

// User represents a platform user.
type User struct {
	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	Role         string `bson:"role" json:"role"`
	Name         string `bson:"name" json:"name"`
	PasswordHash string `bson:"password_hash" json:"-"`
	PhoneNumber  string `bson:"phone_number" json:"phone_number"`
	ProfileImage string `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	Profession   string `bson:"profession,omitempty" json:"profession,omitempty"`
	Status       string `bson:"status" json:"status"` // e.g., "active"

	// Mentors stay locked out of login until an admin verifies their credentials.
	CredentialsVerified bool `bson:"credentials_verified" json:"credentials_verified"`

	// Google OAuth material, set for social sign-in accounts.
	GoogleRefreshToken    string    `bson:"google_refresh_token,omitempty" json:"-"`
	GoogleTokenExpiryDate time.Time `bson:"google_token_expiry,omitempty" json:"-"`

	// SHA-256 hash of the active JWT; cleared on logout.
	TokenHash string `bson:"token_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PendingUser is a registration awaiting email verification. It lives in
// Redis with a TTL rather than in its own collection.
type PendingUser struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	PhoneNumber  string    `json:"phone_number"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is the public author info embedded in community content.
type UserSummary struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	Role       string `bson:"role" json:"role"`
	Profession string `bson:"profession,omitempty" json:"profession,omitempty"`
	Image      string `bson:"image,omitempty" json:"image,omitempty"`
}
