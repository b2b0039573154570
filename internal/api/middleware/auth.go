package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clipforge/clip-shortener/internal/auth"
)

// Context keys under which the verified claims are attached.
const (
	CtxUserID   = "userId"
	CtxUsername = "username"
	CtxEmail    = "email"
)

type errorResponse struct {
	Error string `json:"error"`
}

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth gates protected routes: it extracts the bearer token, verifies it and
// injects the claims into the request context. A missing or malformed header
// yields 401; any verification failure (bad signature or expiry) yields 403 —
// the wire contract does not distinguish the two.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Access token required"})
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return c.JSON(http.StatusForbidden, errorResponse{Error: "Invalid or expired token"})
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxEmail, claims.Email)

			return next(c)
		}
	}
}
