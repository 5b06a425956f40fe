package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/infrastructure/logger"
	"github.com/zenith/core/internal/ports"
)

var testClock = time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

func newTaskService(taskRepo *mockTaskRepository, userRepo *mockUserRepository) *TaskService {
	svc := NewTaskService(taskRepo, userRepo, logger.NewNop())
	svc.now = func() time.Time { return testClock }
	return svc
}

func TestCreateTask_DefaultsScheduledForToToday(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Task")).Return(nil)

	task, err := svc.CreateTask(context.Background(), "user-1", ports.CreateTaskRequest{Title: "  Write report  "})

	require.NoError(t, err)
	require.Equal(t, "Write report", task.Title)
	require.Equal(t, "user-1", task.UserID)
	require.Equal(t, entities.TaskStatusPending, task.Status)
	require.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), task.ScheduledFor)
	require.NotEqual(t, uuid.Nil, task.ID)
	require.Nil(t, task.CompletedAt)
	require.Nil(t, task.ArchivedAt)
	taskRepo.AssertExpectations(t)
}

func TestCreateTask_NormalizesExplicitSchedule(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Task")).Return(nil)

	at := time.Date(2025, 1, 20, 17, 45, 0, 0, time.UTC)
	task, err := svc.CreateTask(context.Background(), "user-1", ports.CreateTaskRequest{
		Title:        "Plan sprint",
		ScheduledFor: &at,
	})

	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), task.ScheduledFor)
}

func TestCreateTask_Validation(t *testing.T) {
	svc := newTaskService(new(mockTaskRepository), new(mockUserRepository))
	badEnergy := 11
	badEstimate := 0
	badPriority := entities.Priority("urgent")
	badFocus := entities.FocusType("chores")

	cases := []struct {
		name  string
		req   ports.CreateTaskRequest
		field string
	}{
		{"blank title", ports.CreateTaskRequest{Title: "   "}, "title"},
		{"energy above range", ports.CreateTaskRequest{Title: "t", Energy: &badEnergy}, "energy"},
		{"zero time estimate", ports.CreateTaskRequest{Title: "t", TimeEstimate: &badEstimate}, "timeEstimate"},
		{"unknown priority", ports.CreateTaskRequest{Title: "t", Priority: &badPriority}, "priority"},
		{"unknown focus type", ports.CreateTaskRequest{Title: "t", FocusType: &badFocus}, "focusType"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTask(context.Background(), "user-1", tc.req)

			require.Error(t, err)
			require.True(t, entities.IsValidation(err))
			var verr *entities.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestUpdateTask_BuildsPatchAndTrimsTitle(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	id := uuid.New()
	title := "  Refine outline  "
	energy := 7
	updated := &entities.Task{ID: id, Title: "Refine outline"}

	taskRepo.On("UpdateFields", mock.Anything, id, "user-1", mock.MatchedBy(func(p ports.TaskPatch) bool {
		return p.Title != nil && *p.Title == "Refine outline" &&
			p.Energy != nil && *p.Energy == 7 &&
			p.Status == nil && p.ScheduledFor == nil
	}), testClock).Return(updated, nil)

	task, err := svc.UpdateTask(context.Background(), id, "user-1", ports.UpdateTaskRequest{
		Title:  &title,
		Energy: &energy,
	})

	require.NoError(t, err)
	require.Equal(t, updated, task)
	taskRepo.AssertExpectations(t)
}

func TestUpdateTask_EmptyPatchReadsBack(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	id := uuid.New()
	existing := &entities.Task{ID: id, Title: "Untouched"}
	taskRepo.On("GetByID", mock.Anything, id, "user-1").Return(existing, nil)

	task, err := svc.UpdateTask(context.Background(), id, "user-1", ports.UpdateTaskRequest{})

	require.NoError(t, err)
	require.Equal(t, existing, task)
	taskRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTask_RejectsBlankTitle(t *testing.T) {
	svc := newTaskService(new(mockTaskRepository), new(mockUserRepository))

	blank := "   "
	_, err := svc.UpdateTask(context.Background(), uuid.New(), "user-1", ports.UpdateTaskRequest{Title: &blank})

	require.True(t, entities.IsValidation(err))
}

func TestCompleteTask_OtherOwnersTaskIsNotFound(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	id := uuid.New()
	taskRepo.On("Complete", mock.Anything, id, "intruder", testClock).Return(nil, entities.ErrTaskNotFound)

	_, err := svc.CompleteTask(context.Background(), id, "intruder")

	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestCompleteTask_PassesClock(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	id := uuid.New()
	done := &entities.Task{ID: id, Status: entities.TaskStatusDone, CompletedAt: &testClock}
	taskRepo.On("Complete", mock.Anything, id, "user-1", testClock).Return(done, nil)

	task, err := svc.CompleteTask(context.Background(), id, "user-1")

	require.NoError(t, err)
	require.Equal(t, entities.TaskStatusDone, task.Status)
	require.Equal(t, testClock, *task.CompletedAt)
}

func TestMoveToTomorrow_TargetsNextMidnight(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	id := uuid.New()
	tomorrow := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	moved := &entities.Task{ID: id, Status: entities.TaskStatusMoved, ScheduledFor: tomorrow}
	taskRepo.On("MoveTo", mock.Anything, id, "user-1", tomorrow, testClock).Return(moved, nil)

	task, err := svc.MoveToTomorrow(context.Background(), id, "user-1")

	require.NoError(t, err)
	require.Equal(t, tomorrow, task.ScheduledFor)
	taskRepo.AssertExpectations(t)
}

func TestListForDay_DefaultsToToday(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	dayStart := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	taskRepo.On("ListForDay", mock.Anything, "user-1", dayStart, dayEnd).Return([]*entities.Task{}, nil)

	tasks, err := svc.ListForDay(context.Background(), "user-1", nil)

	require.NoError(t, err)
	require.Empty(t, tasks)
	taskRepo.AssertExpectations(t)
}

func TestListForDay_ExplicitDay(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	day := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)
	taskRepo.On("ListForDay", mock.Anything, "user-1",
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
	).Return([]*entities.Task{{Title: "old"}}, nil)

	tasks, err := svc.ListForDay(context.Background(), "user-1", &day)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestHistory_GroupsByArchiveDate(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	newer := time.Date(2025, 1, 14, 22, 0, 0, 0, time.UTC)
	older := time.Date(2025, 1, 12, 18, 0, 0, 0, time.UTC)
	taskRepo.On("ListArchived", mock.Anything, "user-1").Return([]*entities.Task{
		{ID: uuid.New(), ArchivedAt: &newer},
		{ID: uuid.New(), ArchivedAt: &older},
	}, nil)

	groups, err := svc.History(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "2025-01-14", groups[0].Date)
	require.Equal(t, "2025-01-12", groups[1].Date)
}

func TestStartDay_ReactivatesOnlyBeforeTodayAndOpensSession(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	userRepo := new(mockUserRepository)
	svc := newTaskService(taskRepo, userRepo)

	today := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	taskRepo.On("ReactivateMoved", mock.Anything, "user-1", today, today, testClock).Return(int64(2), nil)
	userRepo.On("SetDayStartedAt", mock.Anything, "user-1", &testClock).Return(nil)

	activated, err := svc.StartDay(context.Background(), "user-1")

	require.NoError(t, err)
	require.Equal(t, int64(2), activated)
	taskRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestEndDay_ArchivesAllAndClosesSession(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	userRepo := new(mockUserRepository)
	svc := newTaskService(taskRepo, userRepo)

	taskRepo.On("ArchiveAll", mock.Anything, "user-1", testClock).Return(int64(3), nil)
	userRepo.On("SetDayStartedAt", mock.Anything, "user-1", (*time.Time)(nil)).Return(nil)

	archived, err := svc.EndDay(context.Background(), "user-1")

	require.NoError(t, err)
	require.Equal(t, int64(3), archived)
	userRepo.AssertExpectations(t)
}

func TestEndDay_SecondCallArchivesNothing(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	userRepo := new(mockUserRepository)
	svc := newTaskService(taskRepo, userRepo)

	taskRepo.On("ArchiveAll", mock.Anything, "user-1", testClock).Return(int64(0), nil)
	userRepo.On("SetDayStartedAt", mock.Anything, "user-1", (*time.Time)(nil)).Return(nil)

	archived, err := svc.EndDay(context.Background(), "user-1")

	require.NoError(t, err)
	require.Zero(t, archived)
}

func TestDeleteTask_NotFoundPassesThrough(t *testing.T) {
	taskRepo := new(mockTaskRepository)
	svc := newTaskService(taskRepo, new(mockUserRepository))

	id := uuid.New()
	taskRepo.On("Delete", mock.Anything, id, "user-1").Return(entities.ErrTaskNotFound)

	err := svc.DeleteTask(context.Background(), id, "user-1")

	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}
