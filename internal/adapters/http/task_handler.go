package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/infrastructure/logger"
	"github.com/zenith/core/internal/ports"
)

// TaskHandler handles task lifecycle requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), ownerID(c), req)
	if err != nil {
		h.logger.Error("Create task failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"task": task})
}

// ListTasks handles GET /tasks with an optional ?date=YYYY-MM-DD
func (h *TaskHandler) ListTasks(c echo.Context) error {
	var day *time.Time
	if dateStr := c.QueryParam("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		}
		day = &parsed
	}

	tasks, err := h.taskService.ListForDay(c.Request().Context(), ownerID(c), day)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	if tasks == nil {
		tasks = []*entities.Task{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"tasks": tasks})
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id, ownerID(c))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"task": task})
}

// UpdateTask handles PUT /tasks/:id. Only fields present in the body are
// applied.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, ownerID(c), req)
	if err != nil {
		h.logger.Error("Update task failed", "error", err, "task_id", id, "user_id", ownerID(c))
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"task": task})
}

// DeleteTask handles DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id, ownerID(c)); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted"})
}

// CompleteTask handles POST /tasks/:id/complete
func (h *TaskHandler) CompleteTask(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	task, err := h.taskService.CompleteTask(c.Request().Context(), id, ownerID(c))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"task": task})
}

// MoveToTomorrow handles POST /tasks/:id/move-to-tomorrow
func (h *TaskHandler) MoveToTomorrow(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	task, err := h.taskService.MoveToTomorrow(c.Request().Context(), id, ownerID(c))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"task": task})
}

// EndDay handles POST /tasks/end-day
func (h *TaskHandler) EndDay(c echo.Context) error {
	archived, err := h.taskService.EndDay(c.Request().Context(), ownerID(c))
	if err != nil {
		h.logger.Error("End day failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"archived": archived})
}

// StartDay handles POST /tasks/start-day
func (h *TaskHandler) StartDay(c echo.Context) error {
	activated, err := h.taskService.StartDay(c.Request().Context(), ownerID(c))
	if err != nil {
		h.logger.Error("Start day failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"activated": activated})
}

// History handles GET /tasks/history. Archived tasks come back keyed by
// the calendar date of their archive instant.
func (h *TaskHandler) History(c echo.Context) error {
	groups, err := h.taskService.History(c.Request().Context(), ownerID(c))
	if err != nil {
		h.logger.Error("Load history failed", "error", err, "user_id", ownerID(c))
		return mapError(err)
	}

	history := make(map[string][]*entities.Task, len(groups))
	for _, g := range groups {
		history[g.Date] = g.Tasks
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"history": history})
}
