package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/devpath/tutorial-platform/internal/api/middleware"
	"github.com/devpath/tutorial-platform/internal/core/domain"
)

// ctxUserID extracts the user id injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing bug, answered as 401 rather than a panic.
func ctxUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.UserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return id, nil
}

// ownedUserID parses the :userId path param and enforces that it matches
// the authenticated caller. Progress and profile records are owner-only.
func ownedUserID(c echo.Context) (uuid.UUID, error) {
	callerID, err := ctxUserID(c)
	if err != nil {
		return uuid.Nil, err
	}

	pathID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, domain.ErrValidation
	}
	if pathID != callerID {
		return uuid.Nil, domain.ErrForbidden
	}
	return pathID, nil
}
