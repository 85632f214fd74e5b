package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/corporation/identity-api/internal/core/domain"
)

// stubResolver maps emails to fixed roles.
type stubResolver struct {
	roles map[string]domain.Role
}

func (r *stubResolver) ResolveRole(_ context.Context, email string) domain.Role {
	return r.roles[email]
}

func newStubResolver() *stubResolver {
	return &stubResolver{roles: map[string]domain.Role{
		"admin@corporation.com":  domain.RoleAdmin,
		"dev@corporation.com":    domain.RoleDeveloper,
		"simple@corporation.com": domain.RoleSimpleMortal,
	}}
}

func runRoleCheck(t *testing.T, mw echo.MiddlewareFunc, email string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set(ContextKeyEmail, email)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	mw := RequireRole(newStubResolver(), domain.RoleAdmin)

	rec, err := runRoleCheck(t, mw, "admin@corporation.com")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_ForbidsOtherRoles(t *testing.T) {
	mw := RequireRole(newStubResolver(), domain.RoleAdmin)

	for _, email := range []string{"dev@corporation.com", "simple@corporation.com", "ghost@corporation.com", ""} {
		_, err := runRoleCheck(t, mw, email)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusForbidden {
			t.Fatalf("email %q: expected 403 HTTPError, got %v", email, err)
		}
		if he.Message != "Required admin role" {
			t.Fatalf("email %q: unexpected message: %v", email, he.Message)
		}
	}
}

func TestRequireRole_RoleSet(t *testing.T) {
	mw := RequireRole(newStubResolver(), domain.RoleAdmin, domain.RoleDeveloper)

	// Developer reads the journal.
	rec, err := runRoleCheck(t, mw, "dev@corporation.com")
	if err != nil {
		t.Fatalf("developer rejected: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// A simple mortal does not.
	_, err = runRoleCheck(t, mw, "simple@corporation.com")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
	if he.Message != "Required admin or developer role" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}
