package stats

import (
	"fmt"
	"testing"
	"time"

	"tasklens/pkg/task"
)

var testToday = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func due(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCollectCountsAndBuckets(t *testing.T) {
	tasks := []*task.Task{
		{Status: task.StatusOpen, Priority: task.PriorityHigh, DueDate: due(2024, 6, 10),
			FilePath: "a.md", Tags: []string{"work"}},
		{Status: task.StatusCompleted, Priority: task.PriorityMedium, DueDate: due(2024, 6, 1),
			FilePath: "a.md"},
		{Status: task.StatusOpen, Priority: task.PriorityMedium, DueDate: due(2024, 6, 15),
			FilePath: "b.md", Tags: []string{"work", "home"}},
		{Status: task.StatusOpen, Priority: task.PriorityMedium, DueDate: due(2024, 6, 20),
			FilePath: "b.md", Recurrence: "every week"},
		{Status: task.StatusOpen, Priority: task.PriorityLow, DueDate: due(2024, 7, 10),
			FilePath: "b.md", Dependencies: []string{"other"}},
		{Status: task.StatusCancelled, Priority: task.PriorityMedium, DueDate: due(2025, 1, 1),
			FilePath: "c.md"},
		{Status: task.StatusOpen, Priority: task.PriorityMedium, FilePath: "c.md"},
	}

	s := Collect(tasks, testToday)

	if s.Total != 7 {
		t.Errorf("total = %d, want 7", s.Total)
	}
	if s.ByStatus["open"] != 5 || s.ByStatus["completed"] != 1 || s.ByStatus["cancelled"] != 1 {
		t.Errorf("by_status = %v", s.ByStatus)
	}
	if s.ByPriority["high"] != 1 || s.ByPriority["medium"] != 5 || s.ByPriority["low"] != 1 {
		t.Errorf("by_priority = %v", s.ByPriority)
	}
	if s.ByTag["work"] != 2 || s.ByTag["home"] != 1 {
		t.Errorf("by_tag = %v", s.ByTag)
	}

	// Past-due completed tasks are not overdue; only the open one counts.
	if s.Overdue != 1 {
		t.Errorf("overdue = %d, want 1", s.Overdue)
	}
	if s.DueToday != 1 {
		t.Errorf("due_today = %d, want 1", s.DueToday)
	}
	// +7 days inclusive: the 15th and 20th.
	if s.DueThisWeek != 2 {
		t.Errorf("due_this_week = %d, want 2", s.DueThisWeek)
	}
	// +30 days inclusive: the 15th, 20th and July 10th.
	if s.DueThisMonth != 3 {
		t.Errorf("due_this_month = %d, want 3", s.DueThisMonth)
	}

	if s.WithDependencies != 1 {
		t.Errorf("with_dependencies = %d, want 1", s.WithDependencies)
	}
	if s.WithRecurrence != 1 {
		t.Errorf("with_recurrence = %d, want 1", s.WithRecurrence)
	}
	if s.FilesWithTasks != 3 {
		t.Errorf("files_with_tasks = %d, want 3", s.FilesWithTasks)
	}

	d := s.DateDistribution
	if d.Past != 2 || d.Today != 1 || d.ThisWeek != 1 || d.ThisMonth != 1 || d.Future != 1 || d.NoDueDate != 1 {
		t.Errorf("date_distribution = %+v", d)
	}
}

func TestCollectBucketsSumToTotal(t *testing.T) {
	var tasks []*task.Task
	offsets := []int{-40, -1, 0, 3, 7, 8, 30, 31, 365}
	for _, off := range offsets {
		d := testToday.AddDate(0, 0, off)
		tasks = append(tasks, &task.Task{Status: task.StatusOpen, DueDate: &d})
	}
	tasks = append(tasks, &task.Task{Status: task.StatusOpen}, &task.Task{Status: task.StatusOpen})

	s := Collect(tasks, testToday)
	d := s.DateDistribution
	sum := d.Past + d.Today + d.ThisWeek + d.ThisMonth + d.Future + d.NoDueDate
	if sum != s.Total {
		t.Errorf("distribution sums to %d, total is %d", sum, s.Total)
	}

	// Boundary placement: +7 is this_week, +8 is this_month, +30 is
	// this_month, +31 is future.
	if d.Past != 2 || d.Today != 1 || d.ThisWeek != 2 || d.ThisMonth != 2 || d.Future != 2 || d.NoDueDate != 2 {
		t.Errorf("date_distribution = %+v", d)
	}
}

func TestTopTagsCapAndOrder(t *testing.T) {
	var tasks []*task.Task
	// Twelve distinct tags, each once, then boost two of them.
	for i := 0; i < 12; i++ {
		tasks = append(tasks, &task.Task{
			Status: task.StatusOpen,
			Tags:   []string{fmt.Sprintf("tag%02d", i)},
		})
	}
	tasks = append(tasks,
		&task.Task{Status: task.StatusOpen, Tags: []string{"tag05"}},
		&task.Task{Status: task.StatusOpen, Tags: []string{"tag05", "tag09"}},
	)

	s := Collect(tasks, testToday)

	if len(s.TopTags) != 10 {
		t.Fatalf("top_tags has %d entries, want 10", len(s.TopTags))
	}
	if s.TopTags[0].Tag != "tag05" || s.TopTags[0].Count != 3 {
		t.Errorf("top_tags[0] = %+v, want tag05 x3", s.TopTags[0])
	}
	if s.TopTags[1].Tag != "tag09" || s.TopTags[1].Count != 2 {
		t.Errorf("top_tags[1] = %+v, want tag09 x2", s.TopTags[1])
	}
	// Remaining single-count tags keep first-encounter order.
	if s.TopTags[2].Tag != "tag00" {
		t.Errorf("top_tags[2] = %+v, want tag00", s.TopTags[2])
	}
}

func TestCollectEmpty(t *testing.T) {
	s := Collect(nil, testToday)
	if s.Total != 0 || len(s.TopTags) != 0 || s.FilesWithTasks != 0 {
		t.Errorf("unexpected summary for empty input: %+v", s)
	}
}
