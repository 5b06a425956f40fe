package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/infrastructure/logger"
	"github.com/zenith/core/internal/ports"
)

// MoodHandler handles mood journal requests
type MoodHandler struct {
	moodService ports.MoodService
	logger      *logger.Logger
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService ports.MoodService, logger *logger.Logger) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
		logger:      logger,
	}
}

// LogMood handles POST /mood
func (h *MoodHandler) LogMood(c echo.Context) error {
	var req ports.LogMoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.moodService.LogMood(c.Request().Context(), ownerID(c), req)
	if err != nil {
		h.logger.Error("Log mood failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"entry": entry})
}

// History handles GET /mood/history with an optional ?days=N window
func (h *MoodHandler) History(c echo.Context) error {
	days := 0
	if daysStr := c.QueryParam("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid days parameter")
		}
		days = parsed
	}

	entries, err := h.moodService.History(c.Request().Context(), ownerID(c), days)
	if err != nil {
		h.logger.Error("Load mood history failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	if entries == nil {
		entries = []*entities.MoodEntry{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"history": entries})
}

// Latest handles GET /mood/latest. The latest field is null when the
// journal is empty.
func (h *MoodHandler) Latest(c echo.Context) error {
	entry, err := h.moodService.Latest(c.Request().Context(), ownerID(c))
	if err != nil {
		h.logger.Error("Load latest mood failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"latest": entry})
}
