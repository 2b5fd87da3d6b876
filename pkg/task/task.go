// Package task defines the data model for checklist tasks parsed from
// Markdown documents.
package task

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by task metadata (no time
// component).
const DateLayout = "2006-01-02"

// Status represents the status of a task, derived from the character
// inside the checklist brackets.
type Status int

const (
	StatusOpen Status = iota
	StatusCompleted
	StatusCancelled
)

// StatusFromMarker maps a bracket character to a Status. The second return
// value is false for unrecognized markers, in which case the line is
// skipped by the parser.
func StatusFromMarker(marker byte) (Status, bool) {
	switch marker {
	case ' ':
		return StatusOpen, true
	case 'x':
		return StatusCompleted, true
	case '-':
		return StatusCancelled, true
	default:
		return 0, false
	}
}

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ParseStatus maps a lowercase status name to a Status.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "open":
		return StatusOpen, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return 0, fmt.Errorf("unknown status: %q", name)
	}
}

// Priority represents the priority of a task, mapped from an emoji marker.
type Priority int

const (
	PriorityLowest Priority = iota
	PriorityLow
	PriorityMedium // default when no marker is present
	PriorityHigh
	PriorityHighest
)

// PriorityFromMarker maps a priority emoji token to a Priority. The second
// return value is false when the token is not a priority marker.
func PriorityFromMarker(token string) (Priority, bool) {
	switch token {
	case "🔺":
		return PriorityHighest, true
	case "⏫":
		return PriorityHigh, true
	case "🔼":
		return PriorityMedium, true
	case "🔽":
		return PriorityLow, true
	case "⏬":
		return PriorityLowest, true
	default:
		return 0, false
	}
}

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHighest:
		return "highest"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	case PriorityLowest:
		return "lowest"
	default:
		return "unknown"
	}
}

// ParsePriority maps a lowercase priority name to a Priority.
func ParsePriority(name string) (Priority, error) {
	switch name {
	case "highest":
		return PriorityHighest, nil
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	case "lowest":
		return PriorityLowest, nil
	default:
		return 0, fmt.Errorf("unknown priority: %q", name)
	}
}

// Task represents a single task parsed from a Markdown file. A Task is
// immutable once the parser returns it.
type Task struct {
	Description string
	Status      Status
	Priority    Priority

	// Optional semantic dates. Nil means absent; no ordering between the
	// dates is enforced.
	CreatedDate   *time.Time
	StartDate     *time.Time
	ScheduledDate *time.Time
	DueDate       *time.Time
	DoneDate      *time.Time
	CancelledDate *time.Time

	// Recurrence is the free text following the recurrence marker.
	Recurrence string

	// BlockID names this task for reference by other tasks.
	BlockID string

	// Dependencies holds block IDs of tasks this one depends on, in
	// left-to-right encounter order with duplicates dropped.
	Dependencies []string

	// Tags holds tag bodies in encounter order.
	Tags []string

	// Provenance.
	FilePath   string
	LineNumber int
	RawText    string
}

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}
