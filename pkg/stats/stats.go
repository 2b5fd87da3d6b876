// Package stats aggregates count, bucket and ranking summaries over a set
// of parsed tasks.
package stats

import (
	"sort"
	"time"

	"tasklens/pkg/task"
)

// TagCount pairs a tag with its occurrence count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// DateDistribution buckets tasks by their due date relative to today. The
// buckets are mutually exclusive; every task lands in exactly one, so the
// six counts sum to the total task count.
type DateDistribution struct {
	Past      int `json:"past"`
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
	Future    int `json:"future"`
	NoDueDate int `json:"no_due_date"`
}

// Summary holds the aggregate statistics for one task set.
type Summary struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
	ByTag      map[string]int `json:"by_tag"`

	Overdue      int `json:"overdue"`
	DueToday     int `json:"due_today"`
	DueThisWeek  int `json:"due_this_week"`
	DueThisMonth int `json:"due_this_month"`

	WithDependencies int `json:"with_dependencies"`
	WithRecurrence   int `json:"with_recurrence"`
	FilesWithTasks   int `json:"files_with_tasks"`

	TopTags []TagCount `json:"top_tags"`

	DateDistribution DateDistribution `json:"date_distribution"`
}

// topTagLimit caps the ranked tag list.
const topTagLimit = 10

// Collect reduces tasks to a Summary. today anchors the date buckets and
// is resolved once for the whole pass; due_this_week and due_this_month
// count tasks due between today and +7 or +30 days inclusive.
func Collect(tasks []*task.Task, today time.Time) *Summary {
	today = midnight(today)
	weekEnd := today.AddDate(0, 0, 7)
	monthEnd := today.AddDate(0, 0, 30)

	s := &Summary{
		Total:      len(tasks),
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
		ByTag:      make(map[string]int),
	}

	files := make(map[string]struct{})
	var tagOrder []string

	for _, t := range tasks {
		s.ByStatus[t.Status.String()]++
		s.ByPriority[t.Priority.String()]++

		for _, tag := range t.Tags {
			if s.ByTag[tag] == 0 {
				tagOrder = append(tagOrder, tag)
			}
			s.ByTag[tag]++
		}

		if len(t.Dependencies) > 0 {
			s.WithDependencies++
		}
		if t.Recurrence != "" {
			s.WithRecurrence++
		}
		if t.FilePath != "" {
			files[t.FilePath] = struct{}{}
		}

		if t.DueDate == nil {
			s.DateDistribution.NoDueDate++
			continue
		}

		due := midnight(*t.DueDate)
		if due.Before(today) {
			s.DateDistribution.Past++
			if t.Status == task.StatusOpen {
				s.Overdue++
			}
			continue
		}

		// Inclusive windows anchored at today; the counters overlap, the
		// distribution buckets do not.
		if !due.After(weekEnd) {
			s.DueThisWeek++
		}
		if !due.After(monthEnd) {
			s.DueThisMonth++
		}

		switch {
		case due.Equal(today):
			s.DueToday++
			s.DateDistribution.Today++
		case !due.After(weekEnd):
			s.DateDistribution.ThisWeek++
		case !due.After(monthEnd):
			s.DateDistribution.ThisMonth++
		default:
			s.DateDistribution.Future++
		}
	}

	s.FilesWithTasks = len(files)
	s.TopTags = rankTags(s.ByTag, tagOrder)
	return s
}

// rankTags orders tags by count descending, breaking ties by first
// encounter order, and keeps the top entries.
func rankTags(counts map[string]int, order []string) []TagCount {
	ranked := make([]TagCount, 0, len(order))
	for _, tag := range order {
		ranked = append(ranked, TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topTagLimit {
		ranked = ranked[:topTagLimit]
	}
	return ranked
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
