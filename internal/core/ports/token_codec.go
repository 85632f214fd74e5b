package ports

import "github.com/corporation/identity-api/internal/core/domain"

// TokenCodec signs and verifies the two kinds of bearer tokens.
type TokenCodec interface {
	// Issue returns a signed token asserting the subject until the kind's TTL elapses.
	Issue(subject string, kind domain.TokenKind) (string, error)
	// Verify returns the subject of a valid token. Every failure mode
	// (bad signature, malformed, expired, wrong kind) collapses to
	// domain.ErrTokenInvalid.
	Verify(token string, kind domain.TokenKind) (string, error)
}
