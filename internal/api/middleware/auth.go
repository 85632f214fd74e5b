package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/corporation/identity-api/internal/api/metrics"
	"github.com/corporation/identity-api/internal/core/domain"
	"github.com/corporation/identity-api/internal/core/ports"
)

// ContextKeyEmail is where the gate stores the verified subject email.
const ContextKeyEmail = "email"

type openRoute struct {
	method string
	path   string
}

// openEndpoints lists the (method, path) pairs reachable without a token:
// health check, token issuance/refresh and introspection surfaces.
var openEndpoints = []openRoute{
	{http.MethodGet, "/health_check"},
	{http.MethodPost, "/token/pair"},
	{http.MethodPost, "/token/refresh"},
	{http.MethodGet, "/metrics"},
	{http.MethodGet, "/openapi.json"},
}

// openPrefixes exempts whole path trees (swagger UI assets).
var openPrefixes = []string{"/docs"}

func exempt(method, path string) bool {
	for _, r := range openEndpoints {
		if r.method == method && r.path == path {
			return true
		}
	}
	for _, p := range openPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Auth is the request gate: exempt paths pass through untouched, every
// other request must carry a valid access token in the Authorization
// header. On success the subject email is attached to the request context.
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if exempt(req.Method, req.URL.Path) {
				return next(c)
			}

			authHeader := req.Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header missing")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_scheme").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token invalid or expired")
			}

			subject, err := codec.Verify(parts[1], domain.TokenAccess)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token invalid or expired")
			}

			c.Set(ContextKeyEmail, subject)
			return next(c)
		}
	}
}
