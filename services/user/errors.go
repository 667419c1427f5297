package user

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for a wrong email/password combination.
// It deliberately carries no detail about which part was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrVerificationExpired is returned when an email verification token is
// unknown or its pending registration has timed out.
var ErrVerificationExpired = errors.New("verification link is invalid or has expired")

// CredentialsPendingError signals that a mentor account exists but cannot
// sign in until an admin approves the submitted credentials.
type CredentialsPendingError struct {
	Email string
}

func (e CredentialsPendingError) Error() string {
	return fmt.Sprintf("mentor account %s is awaiting credential verification", e.Email)
}

// DuplicateAccountError signals that an account already exists for the
// (email, role) pair.
type DuplicateAccountError struct {
	Email string
	Role  string
}

func (e DuplicateAccountError) Error() string {
	return fmt.Sprintf("an account for %s already exists as %s", e.Email, e.Role)
}
