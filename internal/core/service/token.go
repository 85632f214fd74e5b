package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/corporation/identity-api/internal/core/domain"
)

const (
	defaultAccessTTL  = 20 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenCodecConfig carries the signing material and lifetimes for both
// token kinds. Access and refresh secrets must differ so one leaked
// secret cannot forge tokens of the other kind.
type TokenCodecConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	// Algorithm selects the HMAC signing method: HS256 (default), HS384 or HS512.
	Algorithm string
}

// TokenCodec issues and verifies the compact expiring identity tokens.
type TokenCodec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	method        *jwt.SigningMethodHMAC

	// now is swapped out in tests to simulate clock movement.
	now func() time.Time
}

func NewTokenCodec(cfg TokenCodecConfig) *TokenCodec {
	accessTTL := cfg.AccessTTL
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	refreshTTL := cfg.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}

	return &TokenCodec{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		method:        signingMethod(cfg.Algorithm),
		now:           time.Now,
	}
}

// Issue signs a token asserting the subject until the kind's TTL elapses.
func (c *TokenCodec) Issue(subject string, kind domain.TokenKind) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": jwt.NewNumericDate(c.now().Add(c.ttl(kind))),
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret(kind))
}

// Verify checks the signature and expiry of a token against the secret
// for the given kind and returns its subject. Bad signature, malformed
// input, a mismatched kind and expiry are deliberately indistinguishable:
// all return domain.ErrTokenInvalid.
func (c *TokenCodec) Verify(token string, kind domain.TokenKind) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return c.secret(kind), nil
		},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return subject, nil
}

func (c *TokenCodec) secret(kind domain.TokenKind) []byte {
	if kind == domain.TokenRefresh {
		return c.refreshSecret
	}
	return c.accessSecret
}

func (c *TokenCodec) ttl(kind domain.TokenKind) time.Duration {
	if kind == domain.TokenRefresh {
		return c.refreshTTL
	}
	return c.accessTTL
}

func signingMethod(alg string) *jwt.SigningMethodHMAC {
	switch alg {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}
