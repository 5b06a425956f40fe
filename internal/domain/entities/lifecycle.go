package entities

import (
	"sort"
	"time"
)

// Day-boundary arithmetic. All rules take an explicit reference time so the
// engine never reads the wall clock; callers decide what "now" means.

// StartOfDay returns midnight of the calendar day containing t, in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDay returns midnight of the calendar day after t
func NextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same calendar day of a's location
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b.In(a.Location())))
}

// Complete marks the task done as of now. Re-completion is permitted and
// refreshes the completion instant.
func (t *Task) Complete(now time.Time) {
	t.Status = TaskStatusDone
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// MoveToTomorrow defers the task to the next calendar day. The task leaves
// the current day's list and re-enters pending on the next day start.
func (t *Task) MoveToTomorrow(now time.Time) {
	t.Status = TaskStatusMoved
	t.ScheduledFor = NextDay(now)
	t.UpdatedAt = now
}

// Reactivatable reports whether a day start should reset this task: only
// moved tasks scheduled strictly before today re-enter the pending list.
func (t *Task) Reactivatable(now time.Time) bool {
	return t.Status == TaskStatusMoved && t.ScheduledFor.Before(StartOfDay(now))
}

// PriorityRank maps a priority to its sort position: high < medium < low < unset
func PriorityRank(p *Priority) int {
	if p == nil {
		return 3
	}
	switch *p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// TaskLess is the canonical day-list ordering: priority rank first, then
// newest creation time, then id as the final tiebreaker. The comparison is
// a stable total order over any task set.
func TaskLess(a, b *Task) bool {
	ra, rb := PriorityRank(a.Priority), PriorityRank(b.Priority)
	if ra != rb {
		return ra < rb
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}

// SortTasks orders tasks by the canonical day-list ordering
func SortTasks(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return TaskLess(tasks[i], tasks[j])
	})
}

// ArchiveGroup is one calendar day of archived tasks
type ArchiveGroup struct {
	Date  string // YYYY-MM-DD of the archive instant, in UTC
	Tasks []*Task
}

// GroupByArchiveDate buckets archived tasks by the calendar date portion of
// archivedAt, newest date first. Within a group the incoming order is kept.
// Tasks without an archive timestamp are skipped.
func GroupByArchiveDate(tasks []*Task) []ArchiveGroup {
	byDate := make(map[string][]*Task)
	var dates []string
	for _, t := range tasks {
		if t.ArchivedAt == nil {
			continue
		}
		key := t.ArchivedAt.UTC().Format("2006-01-02")
		if _, seen := byDate[key]; !seen {
			dates = append(dates, key)
		}
		byDate[key] = append(byDate[key], t)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]ArchiveGroup, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, ArchiveGroup{Date: d, Tasks: byDate[d]})
	}
	return groups
}
