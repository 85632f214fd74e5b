package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/corporation/identity-api/internal/api/metrics"
	"github.com/corporation/identity-api/internal/core/domain"
	"github.com/corporation/identity-api/internal/core/ports"
)

// RequireRole rejects the request unless the subject's current role is in
// the allowed set. The role is resolved from the store on every request,
// never from the token, so role changes apply immediately.
func RequireRole(resolver ports.RoleResolver, allowed ...domain.Role) echo.MiddlewareFunc {
	message := requiredRoleMessage(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextKeyEmail).(string)
			role := resolver.ResolveRole(c.Request().Context(), email)
			for _, r := range allowed {
				if role == r {
					return next(c)
				}
			}
			metrics.RoleRejectionsTotal.WithLabelValues(c.Path()).Inc()
			return echo.NewHTTPError(http.StatusForbidden, message)
		}
	}
}

func requiredRoleMessage(allowed []domain.Role) string {
	names := make([]string, len(allowed))
	for i, r := range allowed {
		names[i] = string(r)
	}
	return "Required " + strings.Join(names, " or ") + " role"
}
