package ports

import (
	"context"

	"github.com/corporation/identity-api/internal/core/domain"
)

// TokenPair is the result of a successful credential login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService implements the credential exchange and refresh flows.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// RoleResolver maps a verified subject email to its current role. A live
// store lookup is performed on every call so role changes and
// deactivation take effect on the next request.
type RoleResolver interface {
	// ResolveRole returns "" when the email is empty or unknown, which
	// fails every role check.
	ResolveRole(ctx context.Context, email string) domain.Role
}
