package models

// User represents an operator that may call the API when authentication
// is enabled. Users are declared in configuration, not stored.
type User struct {
	// ID is a stable identifier derived from the email (UUID format).
	ID string

	// Email is the login name (unique).
	Email string

	// DisplayName is shown in responses; defaults to the email local part.
	DisplayName string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string
}
