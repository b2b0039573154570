package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/clipforge/clip-shortener/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; a protected handler
// reached without it is a routing bug, reported as 401 rather than a panic.
func ctxUserID(c echo.Context) (int64, error) {
	userID, ok := c.Get(apimiddleware.CtxUserID).(int64)
	if !ok || userID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
