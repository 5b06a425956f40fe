package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/ports"
)

func TestBuildTaskPatch_AlwaysTouchesUpdatedAt(t *testing.T) {
	now := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

	sets, args := buildTaskPatch(ports.TaskPatch{}, now)

	require.Equal(t, []string{"updated_at = $1"}, sets)
	require.Equal(t, []interface{}{now}, args)
}

func TestBuildTaskPatch_NumbersPlaceholdersSequentially(t *testing.T) {
	now := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	title := "New title"
	energy := 6
	status := entities.TaskStatusMoved

	sets, args := buildTaskPatch(ports.TaskPatch{
		Title:  &title,
		Energy: &energy,
		Status: &status,
	}, now)

	require.Equal(t, []string{
		"updated_at = $1",
		"title = $2",
		"energy = $3",
		"status = $4",
	}, sets)
	require.Equal(t, []interface{}{now, "New title", 6, entities.TaskStatusMoved}, args)
}

func TestBuildTaskPatch_AllFields(t *testing.T) {
	now := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	title := "t"
	description := "d"
	energy := 3
	priority := entities.PriorityHigh
	estimate := 45
	focus := entities.FocusDeepWork
	status := entities.TaskStatusDone
	scheduled := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)

	sets, args := buildTaskPatch(ports.TaskPatch{
		Title:        &title,
		Description:  &description,
		Energy:       &energy,
		Priority:     &priority,
		TimeEstimate: &estimate,
		FocusType:    &focus,
		Status:       &status,
		ScheduledFor: &scheduled,
	}, now)

	require.Len(t, sets, 9)
	require.Len(t, args, 9)
	require.Equal(t, "scheduled_for = $9", sets[8])
	require.Equal(t, scheduled, args[8])
}
