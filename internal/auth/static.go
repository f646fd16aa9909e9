package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/settleup/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// Ensure StaticAuthenticator implements Authenticator
var _ Authenticator = (*StaticAuthenticator)(nil)

// StaticAuthenticator checks passwords against a fixed set of users
// declared in configuration.
type StaticAuthenticator struct {
	users map[string]*models.User
}

// NewStaticAuthenticator creates an authenticator over the given users,
// keyed by lower-cased email.
func NewStaticAuthenticator(users []*models.User) *StaticAuthenticator {
	byEmail := make(map[string]*models.User, len(users))
	for _, u := range users {
		byEmail[strings.ToLower(u.Email)] = u
	}
	return &StaticAuthenticator{users: byEmail}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *StaticAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Authenticate verifies the email and password, returning the user if valid.
func (a *StaticAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.User, error) {
	user, ok := a.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ParseUsers decodes "email:bcrypt-hash" pairs separated by commas.
// User IDs are derived from the email so tokens survive restarts.
func ParseUsers(raw string) ([]*models.User, error) {
	var users []*models.User
	seen := make(map[string]bool)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		email, hash, ok := strings.Cut(entry, ":")
		email = strings.ToLower(strings.TrimSpace(email))
		if !ok || email == "" || hash == "" {
			return nil, fmt.Errorf("malformed user entry %q: want email:bcrypt-hash", entry)
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("user %s: invalid bcrypt hash: %w", email, err)
		}
		if seen[email] {
			return nil, fmt.Errorf("user %s declared twice", email)
		}
		seen[email] = true

		displayName, _, _ := strings.Cut(email, "@")
		users = append(users, &models.User{
			ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
			Email:        email,
			DisplayName:  displayName,
			PasswordHash: hash,
		})
	}

	return users, nil
}

// HashPassword returns the bcrypt hash of password at the given cost.
// Use bcrypt.DefaultCost outside of tests.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
