package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenith/core/internal/infrastructure/logger"
	"github.com/zenith/core/internal/ports"
)

// UserHandler handles day-session requests. Start and end delegate to the
// same lifecycle operations as the /tasks equivalents but answer with
// session state instead of counts.
type UserHandler struct {
	userService ports.UserService
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService ports.UserService, taskService ports.TaskService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		taskService: taskService,
		logger:      logger,
	}
}

// DayState handles GET /users/day-state
func (h *UserHandler) DayState(c echo.Context) error {
	state, err := h.userService.DayState(c.Request().Context(), ownerID(c))
	if err != nil {
		h.logger.Error("Get day state failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	return c.JSON(http.StatusOK, state)
}

// StartDay handles POST /users/start-day
func (h *UserHandler) StartDay(c echo.Context) error {
	if _, err := h.taskService.StartDay(c.Request().Context(), ownerID(c)); err != nil {
		h.logger.Error("Start day failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	state, err := h.userService.DayState(c.Request().Context(), ownerID(c))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, state)
}

// EndDay handles POST /users/end-day. Ending an already-closed day is a
// no-op rather than an error.
func (h *UserHandler) EndDay(c echo.Context) error {
	if _, err := h.taskService.EndDay(c.Request().Context(), ownerID(c)); err != nil {
		h.logger.Error("End day failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	return c.JSON(http.StatusOK, ports.DayState{Active: false, StartedAt: nil})
}
