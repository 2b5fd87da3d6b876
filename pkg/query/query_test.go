package query

import (
	"testing"
	"time"

	"tasklens/pkg/task"
)

var testToday = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func statusPtr(s task.Status) *task.Status       { return &s }
func priorityPtr(p task.Priority) *task.Priority { return &p }

func sampleTasks() []*task.Task {
	return []*task.Task{
		{Description: "overdue report", Status: task.StatusOpen, Priority: task.PriorityHigh,
			DueDate: date(2024, 6, 10), Tags: []string{"work"}},
		{Description: "due today", Status: task.StatusOpen, Priority: task.PriorityMedium,
			DueDate: date(2024, 6, 15)},
		{Description: "future errand", Status: task.StatusOpen, Priority: task.PriorityLow,
			DueDate: date(2024, 7, 1), ScheduledDate: date(2024, 6, 25), Tags: []string{"home"}},
		{Description: "finished chore", Status: task.StatusCompleted, Priority: task.PriorityMedium,
			DueDate: date(2024, 6, 1), Tags: []string{"home"}},
		{Description: "undated idea", Status: task.StatusOpen, Priority: task.PriorityMedium},
	}
}

func descriptions(tasks []*task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Description
	}
	return out
}

func assertMatches(t *testing.T, f *Filter, want ...string) {
	t.Helper()
	got := descriptions(f.Apply(sampleTasks(), testToday))
	if len(got) != len(want) {
		t.Fatalf("matched %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("matched[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	f := &Filter{}
	if got := len(f.Apply(sampleTasks(), testToday)); got != 5 {
		t.Errorf("matched %d tasks, want all 5", got)
	}
}

func TestFilterByStatus(t *testing.T) {
	assertMatches(t, &Filter{Status: statusPtr(task.StatusCompleted)}, "finished chore")
}

func TestFilterByPriority(t *testing.T) {
	assertMatches(t, &Filter{Priority: priorityPtr(task.PriorityHigh)}, "overdue report")
}

func TestFilterByTag(t *testing.T) {
	assertMatches(t, &Filter{Tags: []string{"home"}}, "future errand", "finished chore")
}

func TestFilterByMultipleTagsIsConjunctive(t *testing.T) {
	assertMatches(t, &Filter{Tags: []string{"home", "work"}})
}

func TestFilterOverdueExcludesCompletedAndUndated(t *testing.T) {
	assertMatches(t, &Filter{Overdue: true}, "overdue report")
}

func TestFilterDueExact(t *testing.T) {
	assertMatches(t, &Filter{Due: date(2024, 6, 15)}, "due today")
}

func TestFilterDueRangeInclusive(t *testing.T) {
	f := &Filter{DueAfter: date(2024, 6, 10), DueBefore: date(2024, 6, 15)}
	assertMatches(t, f, "overdue report", "due today")
}

func TestFilterDueRangeSkipsUndated(t *testing.T) {
	f := &Filter{DueBefore: date(2024, 12, 31)}
	got := f.Apply(sampleTasks(), testToday)
	for _, tk := range got {
		if tk.DueDate == nil {
			t.Errorf("undated task %q matched a due-date bound", tk.Description)
		}
	}
}

func TestFilterScheduledRange(t *testing.T) {
	f := &Filter{ScheduledAfter: date(2024, 6, 20)}
	assertMatches(t, f, "future errand")
}

func TestFilterCombined(t *testing.T) {
	f := &Filter{
		Status: statusPtr(task.StatusOpen),
		Tags:   []string{"work"},
	}
	assertMatches(t, f, "overdue report")
}

func TestResolveDateRelative(t *testing.T) {
	tests := []struct {
		expr string
		want time.Time
	}{
		{"today", testToday},
		{"TODAY", testToday},
		{"tomorrow", testToday.AddDate(0, 0, 1)},
		{"yesterday", testToday.AddDate(0, 0, -1)},
		{"next week", testToday.AddDate(0, 0, 7)},
		{"last week", testToday.AddDate(0, 0, -7)},
		{"next month", testToday.AddDate(0, 0, 30)},
		{"last month", testToday.AddDate(0, 0, -30)},
		{"next year", testToday.AddDate(1, 0, 0)},
		{"last year", testToday.AddDate(-1, 0, 0)},
		{"+7 days", testToday.AddDate(0, 0, 7)},
		{"-2 weeks", testToday.AddDate(0, 0, -14)},
		{"+1 month", testToday.AddDate(0, 0, 30)},
		{"-1 year", testToday.AddDate(-1, 0, 0)},
		{"2024-12-25", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ResolveDate(tt.expr, testToday)
		if err != nil {
			t.Errorf("ResolveDate(%q) error: %v", tt.expr, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ResolveDate(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestResolveDateInvalid(t *testing.T) {
	for _, expr := range []string{"", "someday", "12-25-2024", "+many days", "+7 fortnights"} {
		if _, err := ResolveDate(expr, testToday); err == nil {
			t.Errorf("ResolveDate(%q): expected error", expr)
		}
	}
}
