package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/corporation/identity-api/internal/core/domain"
	"github.com/corporation/identity-api/internal/core/ports"
)

// stubAuthService returns canned results keyed by credentials.
type stubAuthService struct {
	loginErr   error
	refreshErr error
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.TokenPair, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.TokenPair{AccessToken: "access-" + email, RefreshToken: "refresh-" + email}, nil
}

func (s *stubAuthService) Refresh(_ context.Context, refreshToken string) (string, error) {
	if s.refreshErr != nil {
		return "", s.refreshErr
	}
	return "new-access-token", nil
}

func newFormContext(form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/token/pair", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_TokenPair(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newFormContext(url.Values{
		"username": {"carol@corporation.com"},
		"password": {"S3cret!pass"},
	})

	if err := h.TokenPair(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var pair ports.TokenPair
	if err := json.Unmarshal(rec.Body.Bytes(), &pair); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
}

func TestAuthHandler_TokenPair_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for _, form := range []url.Values{
		{},
		{"username": {"carol@corporation.com"}},
		{"password": {"S3cret!pass"}},
	} {
		c, _ := newFormContext(form)
		err := h.TokenPair(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("form %v: expected 400 HTTPError, got %v", form, err)
		}
	}
}

func TestAuthHandler_TokenPair_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrBadCredentials})
	c, _ := newFormContext(url.Values{
		"username": {"carol@corporation.com"},
		"password": {"wrong"},
	})

	if err := h.TokenPair(c); !errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials to pass through, got %v", err)
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newJSONContext(http.MethodPost, "/token/refresh", `{"refresh_token":"some-token"}`)

	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp accessTokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "new-access-token" {
		t.Fatalf("unexpected access token: %q", resp.AccessToken)
	}
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{refreshErr: domain.ErrTokenInvalid})
	c, rec := newJSONContext(http.MethodPost, "/token/refresh", `{"refresh_token":"expired"}`)

	err := h.Refresh(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Message != "Invalid refresh token" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("WWW-Authenticate header not set")
	}
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newJSONContext(http.MethodPost, "/token/refresh", `{}`)

	err := h.Refresh(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
