package service

// TokenService issues and validates the short-lived access tokens used by the
// admin dashboard after exchanging the configured admin secret.
type TokenService interface {
	// GenerateAdminToken creates a signed access token.
	GenerateAdminToken() (string, error)

	// ValidateAdminToken checks a token string and returns an error when it
	// is invalid or expired.
	ValidateAdminToken(token string) error
}
