package auth

import (
	"context"

	"github.com/mmynk/settleup/internal/models"
)

// Authenticator verifies operator credentials.
// Implementations can be swapped (static list, LDAP, OAuth, ...) without
// touching the service layer.
type Authenticator interface {
	// Authenticate verifies the credential and returns the matching user.
	// Returns ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if a new credential meets the requirements.
	ValidateCredential(credential string) error
}
