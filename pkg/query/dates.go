// Package query filters task collections and resolves the relative date
// expressions accepted by the query front ends.
package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tasklens/pkg/task"
)

// ResolveDate turns a date expression into a calendar date relative to
// today. It accepts absolute YYYY-MM-DD dates and the relative forms
// "today", "tomorrow", "yesterday", "next/last week", "next/last month",
// "next/last year", and signed offsets like "+7 days" or "-2 weeks".
// Months are approximated as 30 days.
func ResolveDate(expr string, today time.Time) (time.Time, error) {
	today = Midnight(today)
	lower := strings.ToLower(strings.TrimSpace(expr))

	switch lower {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "next week":
		return today.AddDate(0, 0, 7), nil
	case "last week":
		return today.AddDate(0, 0, -7), nil
	case "next month":
		return today.AddDate(0, 0, 30), nil
	case "last month":
		return today.AddDate(0, 0, -30), nil
	case "next year":
		return today.AddDate(1, 0, 0), nil
	case "last year":
		return today.AddDate(-1, 0, 0), nil
	}

	if strings.HasPrefix(lower, "+") || strings.HasPrefix(lower, "-") {
		if d, ok := resolveOffset(lower, today); ok {
			return d, nil
		}
	}

	if d, err := time.Parse(task.DateLayout, expr); err == nil {
		return d, nil
	}

	return time.Time{}, fmt.Errorf(
		"unable to parse date %q: use YYYY-MM-DD or a relative date like 'today', 'tomorrow', '+7 days'", expr)
}

func resolveOffset(expr string, today time.Time) (time.Time, bool) {
	parts := strings.Fields(expr)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}

	switch parts[1] {
	case "day", "days":
		return today.AddDate(0, 0, n), true
	case "week", "weeks":
		return today.AddDate(0, 0, n*7), true
	case "month", "months":
		// Approximate, consistent with "next month".
		return today.AddDate(0, 0, n*30), true
	case "year", "years":
		return today.AddDate(n, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// Midnight truncates t to its calendar date in UTC, the precision task
// dates carry.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}
