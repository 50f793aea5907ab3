package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/W4153WASMCoder/ApplicationService/pkg/errcodes"
)

// TokenVerifier validates a session token and returns its claims. It is the
// only part of authentication the route middleware depends on.
type TokenVerifier interface {
	ValidateToken(token string) (*Claims, error)
}

// Middleware provides authentication middleware.
type Middleware struct {
	verifier TokenVerifier
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(verifier TokenVerifier) *Middleware {
	return &Middleware{
		verifier: verifier,
	}
}

// Authenticate extracts and validates the session token from the
// Authorization header or the session cookie. If valid, it adds the caller's
// identity to the request context; otherwise it returns 401.
func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := tokenFromRequest(c)
		if token == "" {
			return errcodes.Unauthorized("Authentication required")
		}

		claims, err := m.verifier.ValidateToken(token)
		if err != nil {
			return errcodes.Unauthorized("Invalid or expired token")
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		return next(c)
	}
}

// tokenFromRequest prefers a bearer token and falls back to the cookie so
// both API clients and the browser frontend can authenticate.
func tokenFromRequest(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}
