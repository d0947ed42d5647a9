package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/todo-api/internal/api/middleware"
)

// currentUserID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; an empty value means
// the route was wired without auth and the request must not proceed.
func currentUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
