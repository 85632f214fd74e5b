package domain

// TokenKind distinguishes the two bearer credentials the API issues.
// Each kind is signed with its own secret, so a leaked access secret
// cannot be used to forge refresh tokens or vice versa.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)
