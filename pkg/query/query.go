package query

import (
	"time"

	"tasklens/pkg/task"
)

// Filter selects tasks by status, priority, dates and tag. Nil pointer
// fields are inactive; active fields combine with AND. Date bounds are
// inclusive and apply only to tasks that carry the relevant date.
type Filter struct {
	Status   *task.Status
	Priority *task.Priority

	// Due keeps only tasks due exactly on this date.
	Due *time.Time

	// Overdue keeps only open tasks whose due date is strictly before
	// today.
	Overdue bool

	// Tags must all be present on a matching task.
	Tags []string

	DueAfter  *time.Time
	DueBefore *time.Time

	ScheduledAfter  *time.Time
	ScheduledBefore *time.Time
}

// Apply returns the tasks matching the filter. today anchors the overdue
// check.
func (f *Filter) Apply(tasks []*task.Task, today time.Time) []*task.Task {
	today = Midnight(today)

	matched := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.matches(t, today) {
			matched = append(matched, t)
		}
	}
	return matched
}

func (f *Filter) matches(t *task.Task, today time.Time) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Due != nil {
		if t.DueDate == nil || !SameDay(*t.DueDate, *f.Due) {
			return false
		}
	}
	if f.Overdue {
		if t.Status != task.StatusOpen || t.DueDate == nil || !t.DueDate.Before(today) {
			return false
		}
	}
	for _, tag := range f.Tags {
		if !t.HasTag(tag) {
			return false
		}
	}
	if !withinBounds(t.DueDate, f.DueAfter, f.DueBefore) {
		return false
	}
	if !withinBounds(t.ScheduledDate, f.ScheduledAfter, f.ScheduledBefore) {
		return false
	}
	return true
}

func withinBounds(d, after, before *time.Time) bool {
	if after == nil && before == nil {
		return true
	}
	if d == nil {
		return false
	}
	if after != nil && d.Before(*after) {
		return false
	}
	if before != nil && d.After(*before) {
		return false
	}
	return true
}
