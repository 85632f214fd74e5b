package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/corporation/identity-api/internal/core/domain"
	"github.com/corporation/identity-api/internal/core/ports"
)

// TaskDispatcher abstracts the background executor used for work that must
// not delay or fail the request (queue.Dispatcher in production).
type TaskDispatcher interface {
	Enqueue(key string, task func(ctx context.Context))
}

// AuthService implements credential login, token refresh and live role
// resolution.
type AuthService struct {
	repo  ports.UserRepository
	codec ports.TokenCodec
	tasks TaskDispatcher
	log   zerolog.Logger
	now   func() time.Time
}

func NewAuthService(repo ports.UserRepository, codec ports.TokenCodec, tasks TaskDispatcher, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:  repo,
		codec: codec,
		tasks: tasks,
		log:   log,
		now:   time.Now,
	}
}

// Login exchanges email and password for an access/refresh token pair.
// Existence is checked before any other field is read; unknown email and
// wrong password both surface as domain.ErrBadCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrBadCredentials
	}

	accessToken, err := s.codec.Issue(user.Email, domain.TokenAccess)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.codec.Issue(user.Email, domain.TokenRefresh)
	if err != nil {
		return nil, err
	}

	// Best-effort last-login stamp, decoupled from the response path.
	// At most once; a failed update is logged and never surfaced.
	userID := user.ID
	loginAt := s.now().UTC()
	s.tasks.Enqueue(userID, func(ctx context.Context) {
		if err := s.repo.SetLastLogin(ctx, userID, loginAt); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("last-login update failed")
		}
	})

	s.log.Info().Str("email", email).Msg("token pair issued")

	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh mints a new access token for the subject of a valid refresh
// token. The refresh token itself is not rotated or invalidated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	subject, err := s.codec.Verify(refreshToken, domain.TokenRefresh)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}
	return s.codec.Issue(subject, domain.TokenAccess)
}

// ResolveRole looks up the subject's current role on every call. Empty
// email, unknown user and a deactivated account all resolve to "", which
// fails every role check.
func (s *AuthService) ResolveRole(ctx context.Context, email string) domain.Role {
	if email == "" {
		return ""
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil || !user.IsActive {
		return ""
	}
	return user.Role
}
