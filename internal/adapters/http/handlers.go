package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenith/core/internal/domain/entities"
)

// Context key under which the auth middleware stores the caller's stable
// user id
const ContextUserID = "user_id"

// ownerID returns the authenticated caller's user id from the context
func ownerID(c echo.Context) string {
	if id, ok := c.Get(ContextUserID).(string); ok {
		return id
	}
	return ""
}

// mapError translates domain errors into HTTP errors. Not-owned entities
// surface as 404 so existence is never confirmed to non-owners; anything
// unexpected falls through to the central error handler as a 500.
func mapError(err error) error {
	switch {
	case entities.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrTaskNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Task not found")
	case errors.Is(err, entities.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, entities.ErrMoodEntryNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Mood entry not found")
	default:
		return err
	}
}

// Shared response types

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
