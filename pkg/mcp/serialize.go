// Package mcp exposes task queries and statistics as MCP tools over stdio.
package mcp

import (
	"time"

	"tasklens/pkg/task"
)

// taskJSON is the transport shape of a task: dates as ISO-8601 strings or
// null, status and priority as lowercase names.
type taskJSON struct {
	Description   string   `json:"description"`
	Status        string   `json:"status"`
	Priority      string   `json:"priority"`
	CreatedDate   *string  `json:"created_date"`
	StartDate     *string  `json:"start_date"`
	ScheduledDate *string  `json:"scheduled_date"`
	DueDate       *string  `json:"due_date"`
	DoneDate      *string  `json:"done_date"`
	CancelledDate *string  `json:"cancelled_date"`
	Recurrence    string   `json:"recurrence"`
	BlockID       string   `json:"block_id"`
	Dependencies  []string `json:"dependencies"`
	Tags          []string `json:"tags"`
	FilePath      string   `json:"file_path"`
	LineNumber    int      `json:"line_number"`
	RawText       string   `json:"raw_text"`
}

func toTaskJSON(t *task.Task) taskJSON {
	iso := func(d *time.Time) *string {
		if d == nil {
			return nil
		}
		s := d.Format(task.DateLayout)
		return &s
	}

	deps := t.Dependencies
	if deps == nil {
		deps = []string{}
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	return taskJSON{
		Description:   t.Description,
		Status:        t.Status.String(),
		Priority:      t.Priority.String(),
		CreatedDate:   iso(t.CreatedDate),
		StartDate:     iso(t.StartDate),
		ScheduledDate: iso(t.ScheduledDate),
		DueDate:       iso(t.DueDate),
		DoneDate:      iso(t.DoneDate),
		CancelledDate: iso(t.CancelledDate),
		Recurrence:    t.Recurrence,
		BlockID:       t.BlockID,
		Dependencies:  deps,
		Tags:          tags,
		FilePath:      t.FilePath,
		LineNumber:    t.LineNumber,
		RawText:       t.RawText,
	}
}

func toTaskJSONList(tasks []*task.Task) []taskJSON {
	out := make([]taskJSON, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskJSON(t)
	}
	return out
}
